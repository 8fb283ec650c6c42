package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DataResponse - 조회 결과와 출처(primary | fallback)
type DataResponse struct {
	Data   any    `json:"data"`
	Source string `json:"source"`
}
