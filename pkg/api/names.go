package api

// Имена API игрового сервера. В URL передается не имя, а его хеш.
const (
	APIUserLogin             = "UserLoginApi"
	APIUserLogout            = "UserLogoutApi"
	APIGetUserPreview        = "GetUserPreviewApi"
	APIGetUserData           = "GetUserDataApi"
	APIGetUserExtend         = "GetUserExtendApi"
	APIGetUserOption         = "GetUserOptionApi"
	APIGetUserRating         = "GetUserRatingApi"
	APIGetUserActivity       = "GetUserActivityApi"
	APIGetUserCharge         = "GetUserChargeApi"
	APIUpsertUserAll         = "UpsertUserAllApi"
	APIUpsertUserChargelog   = "UpsertUserChargelogApi"
	APIUploadUserPlaylogList = "UploadUserPlaylogListApi"
)
