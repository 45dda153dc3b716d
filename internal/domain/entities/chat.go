package entities

// ChatMessage is one turn of an assistant conversation
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// GeneralChatInput is input for the general assistant endpoint
type GeneralChatInput struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1"`
}

// PrescriptionChatInput is input for prescription-scoped assistant questions
type PrescriptionChatInput struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1"`
	Code     string        `json:"code" binding:"required"`
}

// MedicineChatInput is input for medicine-scoped assistant questions
type MedicineChatInput struct {
	Messages   []ChatMessage `json:"messages" binding:"required,min=1"`
	MedicineID string        `json:"medicineId" binding:"required"`
}
