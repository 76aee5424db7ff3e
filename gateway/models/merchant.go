package models

type Merchant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateMerchant struct {
	Name string `json:"name"`
}
