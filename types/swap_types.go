package types

type SendSwapRequest struct {
	ReceiverID     uint    `json:"receiverId" binding:"required"`
	OfferedSkill   string  `json:"offeredSkill" binding:"required"`
	RequestedSkill string  `json:"requestedSkill" binding:"required"`
	Message        *string `json:"message"`
}

type RespondSwapRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListSwapsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending accepted rejected completed"`
}

type SubmitFeedbackRequest struct {
	SwapID     uint    `json:"swapId" binding:"required"`
	RevieweeID uint    `json:"revieweeId" binding:"required"`
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
	Comment    *string `json:"comment"`
	// Complete also marks the swap completed in the same transaction.
	Complete bool `json:"complete"`
}
