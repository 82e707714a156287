package dto

// RegisterDTO is the payload for creating a new account.
type RegisterDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// QuestionCreateDTO is used by admins to add questions to the pool.
type QuestionCreateDTO struct {
	Text       string `json:"text" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard"`
}

type QuestionUpdateDTO struct {
	Text       string `json:"text" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard"`
}

type InterviewCreateDTO struct {
	Title string `json:"title" binding:"required"`
}

// AnswerSubmitDTO is the submission payload. Confidence is the user's own
// 1-5 rating of their answer and is optional.
type AnswerSubmitDTO struct {
	InterviewID uint   `json:"interviewId" binding:"required"`
	QuestionID  uint   `json:"questionId" binding:"required"`
	AnswerText  string `json:"answerText" binding:"required"`
	Confidence  *int   `json:"confidence" binding:"omitempty,min=1,max=5"`
}
