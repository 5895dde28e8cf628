package api

// Коды возврата UserLoginApi
const (
	ReturnCodeOK                = 1   // вход выполнен
	ReturnCodeAccountLocked     = 100 // аккаунт не вышел из предыдущей сессии
	ReturnCodeCredentialExpired = 102 // истек срок действия QR-кода
)

// UserLoginRequest представляет запрос UserLoginApi
type UserLoginRequest struct {
	UserID      int64  `json:"userId"`
	AccessCode  string `json:"accessCode"`
	RegionID    int    `json:"regionId"`
	PlaceID     int    `json:"placeId"`
	ClientID    string `json:"clientId"` // keychip
	DateTime    int64  `json:"dateTime"` // unix seconds, login timestamp
	IsContinue  bool   `json:"isContinue"`
	GenericFlag int    `json:"genericFlag"`
}

// UserLoginResponse представляет ответ UserLoginApi
type UserLoginResponse struct {
	ReturnCode            int    `json:"returnCode"`
	LoginID               int64  `json:"loginId"`
	LastLoginDate         string `json:"lastLoginDate,omitempty"`
	LoginCount            int    `json:"loginCount,omitempty"`
	ConsecutiveLoginCount int    `json:"consecutiveLoginCount,omitempty"`
}

// UserLogoutRequest представляет запрос UserLogoutApi
type UserLogoutRequest struct {
	UserID     int64  `json:"userId"`
	AccessCode string `json:"accessCode"`
	RegionID   int    `json:"regionId"`
	PlaceID    int    `json:"placeId"`
	ClientID   string `json:"clientId"`
	DateTime   int64  `json:"dateTime"` // должен совпадать с timestamp логина
	Type       int    `json:"type"`
}

// UserPreviewRequest представляет запрос GetUserPreviewApi
type UserPreviewRequest struct {
	UserID        int64  `json:"userId"`
	SegaIDAuthKey string `json:"segaIdAuthKey"`
}

// UserPreviewResponse представляет ответ GetUserPreviewApi
type UserPreviewResponse struct {
	UserID        int64  `json:"userId"`
	UserName      string `json:"userName"`
	IsLogin       bool   `json:"isLogin"`
	LastLoginDate string `json:"lastLoginDate"`
	LastPlayDate  string `json:"lastPlayDate"`
	PlayerRating  int    `json:"playerRating"`
	BanState      int    `json:"banState"`
}

// UserRequest is the common body of the GetUser*Api family.
type UserRequest struct {
	UserID int64 `json:"userId"`
}

// CodeResponse представляет ответ upsert-запросов
type CodeResponse struct {
	ReturnCode int    `json:"returnCode"`
	APIName    string `json:"apiName,omitempty"`
}
