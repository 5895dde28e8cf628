// Package userall собирает документ UpsertUserAll из данных аккаунта,
// полученных с сервера, и применяет к нему локальные изменения.
package userall

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/iudanet/sdgb/pkg/api"
)

// GameID игры, подставляется в lastGameId и firstGameId
const GameID = "SDGB"

// Форматы дат игрового сервера
const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// CST - часовой пояс сервера (UTC+8)
var CST = time.FixedZone("CST", 8*60*60)

// DefaultUnlockKinds - типы, которые открываются для трека по умолчанию
var DefaultUnlockKinds = []api.ItemKind{api.ItemMusic, api.ItemMusicMaster}

// Params описывает сессию и автомат, от имени которых собирается документ
type Params struct {
	UserID         int64
	LoginID        int64
	LoginTimestamp int64
	Keychip        string
	PlaceID        int
	PlaceName      string
	RegionID       int
	RegionName     string
	GameVersion    string // например "1.51.00"
	RatingOffset   int
	PlaySpecial    int32
	Clock          func() time.Time
}

// Sources - ответы GetUser*Api, из которых строится документ
type Sources struct {
	UserData api.UserData
	Extend   json.RawMessage
	Option   json.RawMessage
	Rating   json.RawMessage
	Activity json.RawMessage
	Charges  []json.RawMessage
}

// Document is the account document under construction. It is owned by one
// session and is not safe for concurrent use.
type Document struct {
	params  Params
	live    api.UserData
	request api.UpsertUserAllRequest
	score   api.ChartScore
	replace bool
}

// Build собирает документ из живых данных аккаунта
func Build(p Params, src Sources) *Document {
	if p.Clock == nil {
		p.Clock = time.Now
	}

	d := &Document{
		params: p,
		live:   src.UserData,
		score:  api.DefaultChartScore(),
	}

	charges := src.Charges
	if charges == nil {
		charges = []json.RawMessage{}
	}

	d.request = api.UpsertUserAllRequest{
		UserID:    p.UserID,
		PlaylogID: p.LoginID,
		UpsertUserAll: api.UpsertUserAll{
			UserData:                    []api.UserData{d.buildUserData()},
			UserExtend:                  rawList(src.Extend),
			UserOption:                  rawList(src.Option),
			UserGhost:                   []json.RawMessage{},
			UserCharacterList:           []json.RawMessage{},
			UserMapList:                 []json.RawMessage{},
			UserLoginBonusList:          []json.RawMessage{},
			UserRatingList:              rawList(src.Rating),
			UserItemList:                []api.UserItem{},
			UserMusicDetailList:         []api.ChartScore{d.score},
			UserCourseList:              []json.RawMessage{},
			UserFriendSeasonRankingList: []json.RawMessage{},
			UserChargeList:              charges,
			UserFavoriteList:            []json.RawMessage{},
			UserActivityList:            rawList(src.Activity),
			UserGamePlaylogList:         []api.GamePlaylog{d.buildGamePlaylog()},
			User2pPlaylog: api.User2pPlaylog{
				User2pPlaylogDetailList: []json.RawMessage{},
			},
			UserIntimateList:      []json.RawMessage{},
			UserShopItemStockList: []json.RawMessage{},
			UserGetPointList:      []json.RawMessage{},
			UserTradeItemList:     []json.RawMessage{},
			UserFavoritemusicList: []json.RawMessage{},
			UserKaleidxScopeList:  []json.RawMessage{},
			IsNewMusicDetailList:  "1",
			IsNewCourseList:       "0",
		},
	}

	return d
}

func rawList(item json.RawMessage) []json.RawMessage {
	if len(item) == 0 {
		return []json.RawMessage{}
	}
	return []json.RawMessage{item}
}

// buildUserData копирует профиль и заменяет поля, описывающие текущую игру
func (d *Document) buildUserData() api.UserData {
	p := d.params
	ud := d.live

	ud.CharaSlot = slices.Clone(ud.CharaSlot)
	ud.CharaLockSlot = slices.Clone(ud.CharaLockSlot)

	ud.AccessCode = ""
	ud.IsNetMember = 1
	ud.RenameCredit = 0
	ud.MusicRating = d.live.MusicRating + p.RatingOffset
	ud.PlayerRating = d.live.PlayerRating + p.RatingOffset
	ud.HighestRating = max(d.live.HighestRating, ud.PlayerRating)
	ud.EventWatchedDate = d.live.EventWatchedDate + ".0"

	ud.LastGameID = GameID
	ud.LastLoginDate = time.Unix(p.LoginTimestamp, 0).In(CST).Format(dateTimeLayout) + ".0"
	ud.LastPlayDate = d.now().Format(dateTimeLayout) + ".0"
	ud.LastPlayCredit = 1
	ud.LastPlayMode = 0
	ud.LastPlaceID = p.PlaceID
	ud.LastPlaceName = p.PlaceName
	ud.LastAllNetID = 0
	ud.LastRegionID = p.RegionID
	ud.LastRegionName = p.RegionName
	ud.LastClientID = p.Keychip
	ud.LastCountryCode = "CHN"
	ud.LastSelectEMoney = 0
	ud.LastSelectTicket = 0
	ud.LastCountCourse = 0
	ud.FirstGameID = GameID

	ud.PlayVsCount = 0
	ud.PlaySyncCount = 0
	ud.WinCount = 0
	ud.HelpCount = 0
	ud.ComboCount = 0
	ud.BanState = 0
	ud.DateTime = p.LoginTimestamp

	return ud
}

func (d *Document) buildGamePlaylog() api.GamePlaylog {
	p := d.params
	return api.GamePlaylog{
		PlaylogID:   p.LoginID,
		Version:     p.GameVersion,
		PlayDate:    d.now().Format(dateTimeLayout) + ".0",
		UseTicketID: -1,
		PlayCredit:  1,
		PlayTrack:   1,
		ClientID:    p.Keychip,
		PlayCount:   d.live.PlayCount,
		PlaySpecial: p.PlaySpecial,
	}
}

func (d *Document) now() time.Time {
	return d.params.Clock().In(CST)
}

// Unlock добавляет по записи предмета на каждую пару id × kind.
// При пустом ids или kinds документ не меняется.
func (d *Document) Unlock(ids []int, kinds []api.ItemKind) *Document {
	if len(kinds) == 0 {
		slog.Warn("unlock skipped: no item kinds given", "user_id", d.params.UserID)
		return d
	}
	if len(ids) == 0 {
		slog.Warn("unlock skipped: no item ids given", "user_id", d.params.UserID)
		return d
	}

	all := &d.request.UpsertUserAll
	for _, kind := range kinds {
		for _, id := range ids {
			all.UserItemList = append(all.UserItemList, api.UserItem{
				ItemKind: kind,
				ItemID:   id,
				Stock:    1,
				IsValid:  true,
			})
		}
	}
	all.IsNewItemList = strings.Repeat("1", len(all.UserItemList))

	slog.Info("items unlocked", "user_id", d.params.UserID, "ids", ids, "kinds", kinds)
	return d
}

// Partner открывает партнеров
func (d *Document) Partner(ids []int) *Document {
	return d.Unlock(ids, []api.ItemKind{api.ItemPartner})
}

// Replace задает, перезаписывает ли загружаемый результат лучший результат на сервере
func (d *Document) Replace(flag bool) *Document {
	d.replace = flag
	if flag {
		d.request.UpsertUserAll.IsNewMusicDetailList = "0"
	} else {
		d.request.UpsertUserAll.IsNewMusicDetailList = "1"
	}
	return d
}

// Music подменяет результат чарта в документе и в будущей записи play-log
func (d *Document) Music(score api.ChartScore) *Document {
	d.score = score
	d.request.UpsertUserAll.UserMusicDetailList = []api.ChartScore{score}
	return d
}

// Maimile выставляет счетчик очков в target.
//
// Проверка последней цифры объединяет условия через ИЛИ и потому отклоняет
// любое значение; поведение оставлено без изменений.
func (d *Document) Maimile(target int64) *Document {
	if maimileRejected(target) {
		slog.Error("maimile rejected: value must end with 9 or 0",
			"user_id", d.params.UserID,
			"target", target,
		)
		return d
	}

	ud := &d.request.UpsertUserAll.UserData[0]
	ud.TotalPoint += target - ud.Point
	ud.Point = target
	return d
}

func maimileRejected(target int64) bool {
	last := target % 10
	notNine := last != 9
	notZero := last != 0
	return notNine || notZero
}

// Replacing reports whether the upload overwrites the best score
func (d *Document) Replacing() bool {
	return d.replace
}

// Score возвращает текущий результат чарта
func (d *Document) Score() api.ChartScore {
	return d.score
}

// UserData возвращает профиль в том виде, в каком он будет отправлен
func (d *Document) UserData() api.UserData {
	return d.request.UpsertUserAll.UserData[0]
}

// Payload возвращает тело UpsertUserAllApi
func (d *Document) Payload() api.UpsertUserAllRequest {
	return d.request
}
