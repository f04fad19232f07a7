package response

// ApiResponse adalah envelope seragam untuk semua response, sukses maupun error.
type ApiResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func New(status int, message string, data interface{}) ApiResponse {
	return ApiResponse{Status: status, Message: message, Data: data}
}

// Err selalu mengirim data: null
func Err(status int, message string) ApiResponse {
	return ApiResponse{Status: status, Message: message, Data: nil}
}
