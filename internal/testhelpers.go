package internal

// CreateTestSession creates a test session with sample data
func CreateTestSession(title string) *ChatSession {
	return &ChatSession{
		Title:       title,
		URL:         "https://yuanbao.tencent.com/chat/test",
		CreatedTime: "Thu, 26 Sep 2025 10:00:00 +0800",
		Messages: []ChatMessage{
			{Sender: SenderUser, Content: "请帮我分析这段代码的问题"},
			{Sender: SenderAssistant, Content: "好的，这段代码的主要问题如下", Thinking: "深度思考（用时12秒）"},
		},
	}
}

// CreateTestSessionWithMessages creates a test session with custom messages
func CreateTestSessionWithMessages(title string, messages []ChatMessage) *ChatSession {
	return &ChatSession{
		Title:    title,
		URL:      "https://yuanbao.tencent.com/chat/test",
		Messages: messages,
	}
}

// SampleSnapshot returns a minimal synthetic MHTML document with a
// quoted-printable encoded title and HTML body.
func SampleSnapshot() string {
	return "From: <Saved by Test>\n" +
		"Snapshot-Content-Location: https://test.example.com/chat\n" +
		"Subject: =?utf-8?Q?=E6=B5=8B=E8=AF=95=E5=AF=B9=E8=AF=9D?=\n" +
		"Date: Thu, 26 Sep 2025 10:00:00 +0800\n" +
		"MIME-Version: 1.0\n" +
		"Content-Type: multipart/related;\n" +
		"\ttype=\"text/html\";\n" +
		"\tboundary=\"----TestBoundary----\"\n" +
		"\n" +
		"\n" +
		"------TestBoundary----\n" +
		"Content-Type: text/html\n" +
		"Content-Transfer-Encoding: quoted-printable\n" +
		"\n" +
		"<!DOCTYPE html><html>\n" +
		"<head><meta charset=\"UTF-8\"></head>\n" +
		"<body>\n" +
		"<div class=\"chat-message\">\n" +
		"=E7=94=A8=E6=88=B7=E9=97=AE=E9=A2=98=EF=BC=9A=E4=BD=A0=E5=A5=BD\n" +
		"</div>\n" +
		"<div class=\"chat-message\">\n" +
		"AI=E5=9B=9E=E7=AD=94=EF=BC=9A=E4=BD=A0=E5=A5=BD=EF=BC=8C=E6=88=91=E6=98=AFAI=E5=8A=A9=E6=89=8B\n" +
		"</div>\n" +
		"</body>\n" +
		"</html>\n" +
		"\n" +
		"------TestBoundary----"
}
