package dto

type CreateWalletRequest struct {
	Address string  `json:"address"`
	Name    *string `json:"name,omitempty"`
}
