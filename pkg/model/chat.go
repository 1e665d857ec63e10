package model

const (
	ChatTypePlain      = "chat"
	ChatTypeAttachment = "chat_with_attachment"

	// DefaultUserID is used when a request does not name a user.
	DefaultUserID = "demo-user"
)

type ChatReq struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type ChatRes struct {
	Response string `json:"response"`
}

type ChatWithAttachmentRes struct {
	Response      string `json:"response"`
	HasAttachment bool   `json:"hasAttachment"`
}

type UploadDocumentRes struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Notes    string `json:"notes"`
	Message  string `json:"message"`
}

type HealthRes struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	Port      int    `json:"port"`
	Timestamp string `json:"timestamp"`
}
