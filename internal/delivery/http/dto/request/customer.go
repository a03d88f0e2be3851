package request

type ContactUpdateRequest struct {
	Phone     string `json:"phone"`
	CarName   string `json:"car_name"`
	CarNumber string `json:"car_number"`
}
