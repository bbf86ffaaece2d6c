package models

type AuthorizeRequest struct {
	State string `json:"state" binding:"required"`
}

type AuthorizeResponse struct {
	URL string `json:"url"`
}

type CallbackRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

type CallbackResponse struct {
	AccessToken string           `json:"access_token"`
	Profile     BattleNetProfile `json:"profile"`
}
