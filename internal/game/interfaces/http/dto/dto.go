package dto

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}

func Success(data any) Response {
	return Response{Code: 0, Data: data}
}

func Error(code int, msg string) Response {
	return Response{Code: code, Msg: msg}
}

type SetResourceReq struct {
	Type   string `json:"type" binding:"required"`
	Amount *int   `json:"amount" binding:"required"`
}

type SetCityTileReq struct {
	Team   *int   `json:"team" binding:"required,oneof=0 1"`
	CityID string `json:"city_id"`
}

type PlaceUnitReq struct {
	ID   string `json:"id" binding:"required"`
	Team *int   `json:"team" binding:"required,oneof=0 1"`
	Type *int   `json:"type" binding:"required,oneof=0 1"`
}
