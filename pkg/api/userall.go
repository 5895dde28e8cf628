package api

import "encoding/json"

// UserData is the account profile returned by GetUserDataApi and sent back
// inside UpsertUserAllApi.
type UserData struct {
	AccessCode               string `json:"accessCode"`
	UserName                 string `json:"userName"`
	IsNetMember              int    `json:"isNetMember"`
	Point                    int64  `json:"point"`
	TotalPoint               int64  `json:"totalPoint"`
	IconID                   int    `json:"iconId"`
	PlateID                  int    `json:"plateId"`
	TitleID                  int    `json:"titleId"`
	PartnerID                int    `json:"partnerId"`
	FrameID                  int    `json:"frameId"`
	SelectMapID              int    `json:"selectMapId"`
	TotalAwake               int    `json:"totalAwake"`
	GradeRating              int    `json:"gradeRating"`
	MusicRating              int    `json:"musicRating"`
	PlayerRating             int    `json:"playerRating"`
	HighestRating            int    `json:"highestRating"`
	GradeRank                int    `json:"gradeRank"`
	ClassRank                int    `json:"classRank"`
	CourseRank               int    `json:"courseRank"`
	CharaSlot                []int  `json:"charaSlot"`
	CharaLockSlot            []int  `json:"charaLockSlot"`
	ContentBit               int64  `json:"contentBit"`
	PlayCount                int    `json:"playCount"`
	CurrentPlayCount         int    `json:"currentPlayCount"`
	RenameCredit             int    `json:"renameCredit"`
	MapStock                 int    `json:"mapStock"`
	EventWatchedDate         string `json:"eventWatchedDate"`
	LastGameID               string `json:"lastGameId"`
	LastRomVersion           string `json:"lastRomVersion"`
	LastDataVersion          string `json:"lastDataVersion"`
	LastLoginDate            string `json:"lastLoginDate"`
	LastPlayDate             string `json:"lastPlayDate"`
	LastPlayCredit           int    `json:"lastPlayCredit"`
	LastPlayMode             int    `json:"lastPlayMode"`
	LastPlaceID              int    `json:"lastPlaceId"`
	LastPlaceName            string `json:"lastPlaceName"`
	LastAllNetID             int    `json:"lastAllNetId"`
	LastRegionID             int    `json:"lastRegionId"`
	LastRegionName           string `json:"lastRegionName"`
	LastClientID             string `json:"lastClientId"`
	LastCountryCode          string `json:"lastCountryCode"`
	LastSelectEMoney         int    `json:"lastSelectEMoney"`
	LastSelectTicket         int    `json:"lastSelectTicket"`
	LastSelectCourse         int    `json:"lastSelectCourse"`
	LastCountCourse          int    `json:"lastCountCourse"`
	FirstGameID              string `json:"firstGameId"`
	FirstRomVersion          string `json:"firstRomVersion"`
	FirstDataVersion         string `json:"firstDataVersion"`
	FirstPlayDate            string `json:"firstPlayDate"`
	CompatibleCmVersion      string `json:"compatibleCmVersion"`
	DailyBonusDate           string `json:"dailyBonusDate"`
	DailyCourseBonusDate     string `json:"dailyCourseBonusDate"`
	LastPairLoginDate        string `json:"lastPairLoginDate"`
	LastTrialPlayDate        string `json:"lastTrialPlayDate"`
	PlayVsCount              int    `json:"playVsCount"`
	PlaySyncCount            int    `json:"playSyncCount"`
	WinCount                 int    `json:"winCount"`
	HelpCount                int    `json:"helpCount"`
	ComboCount               int    `json:"comboCount"`
	TotalDeluxscore          int64  `json:"totalDeluxscore"`
	TotalBasicDeluxscore     int64  `json:"totalBasicDeluxscore"`
	TotalAdvancedDeluxscore  int64  `json:"totalAdvancedDeluxscore"`
	TotalExpertDeluxscore    int64  `json:"totalExpertDeluxscore"`
	TotalMasterDeluxscore    int64  `json:"totalMasterDeluxscore"`
	TotalReMasterDeluxscore  int64  `json:"totalReMasterDeluxscore"`
	TotalSync                int64  `json:"totalSync"`
	TotalBasicSync           int64  `json:"totalBasicSync"`
	TotalAdvancedSync        int64  `json:"totalAdvancedSync"`
	TotalExpertSync          int64  `json:"totalExpertSync"`
	TotalMasterSync          int64  `json:"totalMasterSync"`
	TotalReMasterSync        int64  `json:"totalReMasterSync"`
	TotalAchievement         int64  `json:"totalAchievement"`
	TotalBasicAchievement    int64  `json:"totalBasicAchievement"`
	TotalAdvancedAchievement int64  `json:"totalAdvancedAchievement"`
	TotalExpertAchievement   int64  `json:"totalExpertAchievement"`
	TotalMasterAchievement   int64  `json:"totalMasterAchievement"`
	TotalReMasterAchievement int64  `json:"totalReMasterAchievement"`
	PlayerOldRating          int    `json:"playerOldRating"`
	PlayerNewRating          int    `json:"playerNewRating"`
	BanState                 int    `json:"banState"`
	FriendRegistSkip         int    `json:"friendRegistSkip"`
	DateTime                 int64  `json:"dateTime"`
}

// UserDataResponse представляет ответ GetUserDataApi
type UserDataResponse struct {
	UserID   int64    `json:"userId"`
	UserData UserData `json:"userData"`
}

// Ответы GetUserExtendApi, GetUserOptionApi, GetUserRatingApi и GetUserActivityApi.
// Содержимое передается на сервер как есть, поэтому хранится в сыром виде.
type (
	UserExtendResponse struct {
		UserID     int64           `json:"userId"`
		UserExtend json.RawMessage `json:"userExtend"`
	}
	UserOptionResponse struct {
		UserID     int64           `json:"userId"`
		UserOption json.RawMessage `json:"userOption"`
	}
	UserRatingResponse struct {
		UserID     int64           `json:"userId"`
		UserRating json.RawMessage `json:"userRating"`
	}
	UserActivityResponse struct {
		UserID       int64           `json:"userId"`
		UserActivity json.RawMessage `json:"userActivity"`
	}
)

// UserCharge is one purchased ticket ("charge") of the account.
type UserCharge struct {
	ChargeID     int    `json:"chargeId"`
	Stock        int    `json:"stock"`
	PurchaseDate string `json:"purchaseDate"`
	ValidDate    string `json:"validDate"`
	ExtNum1      int    `json:"extNum1"`
}

// UserChargeResponse представляет ответ GetUserChargeApi
type UserChargeResponse struct {
	UserID         int64        `json:"userId"`
	Length         int          `json:"length"`
	UserChargeList []UserCharge `json:"userChargeList"`
}

// UserChargeRecordsResponse is GetUserChargeApi kept in raw form. The records
// go back to the server inside UpsertUserAllApi with only stock changed.
type UserChargeRecordsResponse struct {
	UserID         int64             `json:"userId"`
	Length         int               `json:"length"`
	UserChargeList []json.RawMessage `json:"userChargeList"`
}

// ChartScore is one chart result ("music detail"). Achievement is the
// percentage multiplied by 10000, e.g. 1010000 = 101.0000%.
type ChartScore struct {
	MusicID       int `json:"musicId"`
	Level         int `json:"level"`
	PlayCount     int `json:"playCount"`
	Achievement   int `json:"achievement"`
	ComboStatus   int `json:"comboStatus"`
	SyncStatus    int `json:"syncStatus"`
	DeluxscoreMax int `json:"deluxscoreMax"`
	ScoreRank     int `json:"scoreRank"`
	ExtNum1       int `json:"extNum1"`
}

// DefaultChartScore returns the placeholder chart used when the caller does
// not provide one.
func DefaultChartScore() ChartScore {
	return ChartScore{
		MusicID:   11693,
		PlayCount: 1,
	}
}

// UserItem представляет запись о полученном предмете
type UserItem struct {
	ItemKind ItemKind `json:"itemKind"`
	ItemID   int      `json:"itemId"`
	Stock    int      `json:"stock"`
	IsValid  bool     `json:"isValid"`
}

// GamePlaylog is the per-credit play record embedded in UpsertUserAll.
type GamePlaylog struct {
	PlaylogID       int64  `json:"playlogId"`
	Version         string `json:"version"`
	PlayDate        string `json:"playDate"`
	PlayMode        int    `json:"playMode"` // 0: обычный, 1: Freedom, 2: курс, 3: KaleidxScope
	UseTicketID     int    `json:"useTicketId"`
	PlayCredit      int    `json:"playCredit"`
	PlayTrack       int    `json:"playTrack"`
	ClientID        string `json:"clientId"`
	IsPlayTutorial  bool   `json:"isPlayTutorial"`
	IsEventMode     bool   `json:"isEventMode"`
	IsNewFree       bool   `json:"isNewFree"`
	PlayCount       int    `json:"playCount"`
	PlaySpecial     int32  `json:"playSpecial"`
	PlayOtherUserID int64  `json:"playOtherUserId"`
}

// User2pPlaylog описывает совместную игру; клиент всегда отправляет пустую запись
type User2pPlaylog struct {
	UserID1                 int64             `json:"userId1"`
	UserID2                 int64             `json:"userId2"`
	UserName1               string            `json:"userName1"`
	UserName2               string            `json:"userName2"`
	RegionID                int               `json:"regionId"`
	PlaceID                 int               `json:"placeId"`
	User2pPlaylogDetailList []json.RawMessage `json:"user2pPlaylogDetailList"`
}

// UpsertUserAll is the consolidated account document. The isNew* fields are
// boolean strings telling the server which lists carry new entries.
type UpsertUserAll struct {
	UserData                     []UserData        `json:"userData"`
	UserExtend                   []json.RawMessage `json:"userExtend"`
	UserOption                   []json.RawMessage `json:"userOption"`
	UserGhost                    []json.RawMessage `json:"userGhost"`
	UserCharacterList            []json.RawMessage `json:"userCharacterList"`
	UserMapList                  []json.RawMessage `json:"userMapList"`
	UserLoginBonusList           []json.RawMessage `json:"userLoginBonusList"`
	UserRatingList               []json.RawMessage `json:"userRatingList"`
	UserItemList                 []UserItem        `json:"userItemList"`
	UserMusicDetailList          []ChartScore      `json:"userMusicDetailList"`
	UserCourseList               []json.RawMessage `json:"userCourseList"`
	UserFriendSeasonRankingList  []json.RawMessage `json:"userFriendSeasonRankingList"`
	UserChargeList               []json.RawMessage `json:"userChargeList"`
	UserFavoriteList             []json.RawMessage `json:"userFavoriteList"`
	UserActivityList             []json.RawMessage `json:"userActivityList"`
	UserGamePlaylogList          []GamePlaylog     `json:"userGamePlaylogList"`
	User2pPlaylog                User2pPlaylog     `json:"user2pPlaylog"`
	UserIntimateList             []json.RawMessage `json:"userIntimateList"`
	UserShopItemStockList        []json.RawMessage `json:"userShopItemStockList"`
	UserGetPointList             []json.RawMessage `json:"userGetPointList"`
	UserTradeItemList            []json.RawMessage `json:"userTradeItemList"`
	UserFavoritemusicList        []json.RawMessage `json:"userFavoritemusicList"`
	UserKaleidxScopeList         []json.RawMessage `json:"userKaleidxScopeList"`
	IsNewCharacterList           string            `json:"isNewCharacterList"`
	IsNewMapList                 string            `json:"isNewMapList"`
	IsNewLoginBonusList          string            `json:"isNewLoginBonusList"`
	IsNewItemList                string            `json:"isNewItemList"`
	IsNewMusicDetailList         string            `json:"isNewMusicDetailList"`
	IsNewCourseList              string            `json:"isNewCourseList"`
	IsNewFavoriteList            string            `json:"isNewFavoriteList"`
	IsNewFriendSeasonRankingList string            `json:"isNewFriendSeasonRankingList"`
	IsNewUserIntimateList        string            `json:"isNewUserIntimateList"`
	IsNewFavoritemusicList       string            `json:"isNewFavoritemusicList"`
	IsNewKaleidxScopeList        string            `json:"isNewKaleidxScopeList"`
}

// UpsertUserAllRequest представляет запрос UpsertUserAllApi
type UpsertUserAllRequest struct {
	UserID        int64         `json:"userId"`
	PlaylogID     int64         `json:"playlogId"`
	IsEventMode   bool          `json:"isEventMode"`
	IsFreePlay    bool          `json:"isFreePlay"`
	UpsertUserAll UpsertUserAll `json:"upsertUserAll"`
}
