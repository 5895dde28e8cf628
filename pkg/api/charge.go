package api

// Параметры билета по умолчанию (6-кратный билет)
const (
	DefaultTicketChargeID = 6
	DefaultTicketPrice    = 4
)

// ChargeRecord описывает выданный билет
type ChargeRecord struct {
	ChargeID     int    `json:"chargeId"`
	Stock        int    `json:"stock"`
	PurchaseDate string `json:"purchaseDate"`
	ValidDate    string `json:"validDate"`
}

// ChargeLog описывает факт покупки билета
type ChargeLog struct {
	ChargeID     int    `json:"chargeId"`
	Price        int    `json:"price"`
	PurchaseDate string `json:"purchaseDate"`
	PlaceID      int    `json:"placeId"`
	RegionID     int    `json:"regionId"`
	ClientID     string `json:"clientId"`
}

// UpsertUserChargelogRequest представляет запрос UpsertUserChargelogApi
type UpsertUserChargelogRequest struct {
	UserID        int64        `json:"userId"`
	UserCharge    ChargeRecord `json:"userCharge"`
	UserChargelog ChargeLog    `json:"userChargelog"`
}
