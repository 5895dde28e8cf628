package api

// Playlog is one track record uploaded through UploadUserPlaylogListApi.
type Playlog struct {
	UserID                int64  `json:"userId"`
	OrderID               int    `json:"orderId"`
	PlaylogID             int64  `json:"playlogId"`
	Version               string `json:"version"`
	PlaceID               int    `json:"placeId"`
	PlaceName             string `json:"placeName"`
	LoginDate             int64  `json:"loginDate"`
	PlayDate              string `json:"playDate"`
	UserPlayDate          string `json:"userPlayDate"`
	Type                  int    `json:"type"`
	MusicID               int    `json:"musicId"`
	Level                 int    `json:"level"`
	TrackNo               int    `json:"trackNo"`
	VsMode                int    `json:"vsMode"`
	VsUserName            string `json:"vsUserName"`
	VsStatus              int    `json:"vsStatus"`
	VsUserRating          int    `json:"vsUserRating"`
	VsUserAchievement     int    `json:"vsUserAchievement"`
	VsUserGradeRank       int    `json:"vsUserGradeRank"`
	VsRank                int    `json:"vsRank"`
	PlayerNum             int    `json:"playerNum"`
	PlayedUserID1         int64  `json:"playedUserId1"`
	PlayedUserName1       string `json:"playedUserName1"`
	PlayedMusicLevel1     int    `json:"playedMusicLevel1"`
	PlayedUserID2         int64  `json:"playedUserId2"`
	PlayedUserName2       string `json:"playedUserName2"`
	PlayedMusicLevel2     int    `json:"playedMusicLevel2"`
	PlayedUserID3         int64  `json:"playedUserId3"`
	PlayedUserName3       string `json:"playedUserName3"`
	PlayedMusicLevel3     int    `json:"playedMusicLevel3"`
	CharacterID1          int    `json:"characterId1"`
	CharacterLevel1       int    `json:"characterLevel1"`
	CharacterAwakening1   int    `json:"characterAwakening1"`
	CharacterID2          int    `json:"characterId2"`
	CharacterLevel2       int    `json:"characterLevel2"`
	CharacterAwakening2   int    `json:"characterAwakening2"`
	CharacterID3          int    `json:"characterId3"`
	CharacterLevel3       int    `json:"characterLevel3"`
	CharacterAwakening3   int    `json:"characterAwakening3"`
	CharacterID4          int    `json:"characterId4"`
	CharacterLevel4       int    `json:"characterLevel4"`
	CharacterAwakening4   int    `json:"characterAwakening4"`
	CharacterID5          int    `json:"characterId5"`
	CharacterLevel5       int    `json:"characterLevel5"`
	CharacterAwakening5   int    `json:"characterAwakening5"`
	Achievement           int    `json:"achievement"`
	Deluxscore            int    `json:"deluxscore"`
	ScoreRank             int    `json:"scoreRank"`
	MaxCombo              int    `json:"maxCombo"`
	TotalCombo            int    `json:"totalCombo"`
	MaxSync               int    `json:"maxSync"`
	TotalSync             int    `json:"totalSync"`
	TapCriticalPerfect    int    `json:"tapCriticalPerfect"`
	TapPerfect            int    `json:"tapPerfect"`
	TapGreat              int    `json:"tapGreat"`
	TapGood               int    `json:"tapGood"`
	TapMiss               int    `json:"tapMiss"`
	HoldCriticalPerfect   int    `json:"holdCriticalPerfect"`
	HoldPerfect           int    `json:"holdPerfect"`
	HoldGreat             int    `json:"holdGreat"`
	HoldGood              int    `json:"holdGood"`
	HoldMiss              int    `json:"holdMiss"`
	SlideCriticalPerfect  int    `json:"slideCriticalPerfect"`
	SlidePerfect          int    `json:"slidePerfect"`
	SlideGreat            int    `json:"slideGreat"`
	SlideGood             int    `json:"slideGood"`
	SlideMiss             int    `json:"slideMiss"`
	TouchCriticalPerfect  int    `json:"touchCriticalPerfect"`
	TouchPerfect          int    `json:"touchPerfect"`
	TouchGreat            int    `json:"touchGreat"`
	TouchGood             int    `json:"touchGood"`
	TouchMiss             int    `json:"touchMiss"`
	BreakCriticalPerfect  int    `json:"breakCriticalPerfect"`
	BreakPerfect          int    `json:"breakPerfect"`
	BreakGreat            int    `json:"breakGreat"`
	BreakGood             int    `json:"breakGood"`
	BreakMiss             int    `json:"breakMiss"`
	IsTap                 bool   `json:"isTap"`
	IsHold                bool   `json:"isHold"`
	IsSlide               bool   `json:"isSlide"`
	IsTouch               bool   `json:"isTouch"`
	IsBreak               bool   `json:"isBreak"`
	IsCriticalDisp        bool   `json:"isCriticalDisp"`
	IsFastLateDisp        bool   `json:"isFastLateDisp"`
	FastCount             int    `json:"fastCount"`
	LateCount             int    `json:"lateCount"`
	IsAchieveNewRecord    bool   `json:"isAchieveNewRecord"`
	IsDeluxscoreNewRecord bool   `json:"isDeluxscoreNewRecord"`
	ComboStatus           int    `json:"comboStatus"`
	SyncStatus            int    `json:"syncStatus"`
	IsClear               bool   `json:"isClear"`
	BeforeRating          int    `json:"beforeRating"`
	AfterRating           int    `json:"afterRating"`
	BeforeGrade           int    `json:"beforeGrade"`
	AfterGrade            int    `json:"afterGrade"`
	AfterGradeRank        int    `json:"afterGradeRank"`
	BeforeDeluxRating     int    `json:"beforeDeluxRating"`
	AfterDeluxRating      int    `json:"afterDeluxRating"`
	IsPlayTutorial        bool   `json:"isPlayTutorial"`
	IsEventMode           bool   `json:"isEventMode"`
	IsFreedomMode         bool   `json:"isFreedomMode"`
	PlayMode              int    `json:"playMode"`
	IsNewFree             bool   `json:"isNewFree"`
	TrialPlayAchievement  int    `json:"trialPlayAchievement"`
	ExtNum1               int    `json:"extNum1"`
	ExtNum2               int    `json:"extNum2"`
	ExtNum4               int    `json:"extNum4"`
	ExtBool1              bool   `json:"extBool1"`
	ExtBool2              bool   `json:"extBool2"`
}

// UploadPlaylogRequest представляет запрос UploadUserPlaylogListApi
type UploadPlaylogRequest struct {
	UserID          int64     `json:"userId"`
	UserPlaylogList []Playlog `json:"userPlaylogList"`
}
