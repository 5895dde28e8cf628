package userall

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sdgb/pkg/api"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, CST)

func testParams() Params {
	return Params{
		UserID:         10086,
		LoginID:        987654321,
		LoginTimestamp: fixedNow.Add(-2 * time.Minute).Unix(),
		Keychip:        "A63E01C2805",
		PlaceID:        1403,
		PlaceName:      "test arcade",
		RegionID:       1,
		RegionName:     "北京",
		GameVersion:    "1.51.00",
		RatingOffset:   5,
		PlaySpecial:    -1473249280,
		Clock:          func() time.Time { return fixedNow },
	}
}

func testSources() Sources {
	return Sources{
		UserData: api.UserData{
			UserName:         "ＰＬＡＹＥＲ",
			AccessCode:       "00000000000000000000",
			IsNetMember:      0,
			Point:            1200,
			TotalPoint:       5000,
			MusicRating:      14000,
			PlayerRating:     15000,
			HighestRating:    15002,
			CharaSlot:        []int{101, 102, 103, 104, 105},
			PlayCount:        321,
			RenameCredit:     2,
			EventWatchedDate: "2025-03-01 10:00:00",
			LastGameID:       "SDEZ",
			PlayVsCount:      3,
			BanState:         1,
		},
		Extend:   json.RawMessage(`{"selectMusicId":11693}`),
		Option:   json.RawMessage(`{"optionKind":1}`),
		Rating:   json.RawMessage(`{"rating":15000}`),
		Activity: json.RawMessage(`{"playList":[]}`),
		Charges: []json.RawMessage{
			json.RawMessage(`{"chargeId":6,"stock":0}`),
		},
	}
}

func TestBuild_UserDataOverrides(t *testing.T) {
	doc := Build(testParams(), testSources())
	ud := doc.UserData()

	assert.Equal(t, "ＰＬＡＹＥＲ", ud.UserName)
	assert.Equal(t, "", ud.AccessCode)
	assert.Equal(t, 1, ud.IsNetMember)
	assert.Equal(t, 0, ud.RenameCredit)
	assert.Equal(t, 14005, ud.MusicRating)
	assert.Equal(t, 15005, ud.PlayerRating)
	assert.Equal(t, 15005, ud.HighestRating, "highest rating follows the adjusted player rating")
	assert.Equal(t, "2025-03-01 10:00:00.0", ud.EventWatchedDate)
	assert.Equal(t, GameID, ud.LastGameID)
	assert.Equal(t, GameID, ud.FirstGameID)
	assert.Equal(t, "2025-03-14 15:07:26.0", ud.LastLoginDate)
	assert.Equal(t, "2025-03-14 15:09:26.0", ud.LastPlayDate)
	assert.Equal(t, 1403, ud.LastPlaceID)
	assert.Equal(t, "test arcade", ud.LastPlaceName)
	assert.Equal(t, 1, ud.LastRegionID)
	assert.Equal(t, "北京", ud.LastRegionName)
	assert.Equal(t, "A63E01C2805", ud.LastClientID)
	assert.Equal(t, "CHN", ud.LastCountryCode)
	assert.Equal(t, 1, ud.LastPlayCredit)
	assert.Equal(t, 0, ud.PlayVsCount)
	assert.Equal(t, 0, ud.BanState)
	assert.Equal(t, testParams().LoginTimestamp, ud.DateTime)
}

func TestBuild_HighestRatingKept(t *testing.T) {
	p := testParams()
	p.RatingOffset = 0
	src := testSources()
	src.UserData.HighestRating = 16000

	ud := Build(p, src).UserData()

	assert.Equal(t, 16000, ud.HighestRating)
	assert.Equal(t, 15000, ud.PlayerRating)
}

func TestBuild_Lists(t *testing.T) {
	doc := Build(testParams(), testSources())
	req := doc.Payload()
	all := req.UpsertUserAll

	assert.Equal(t, int64(10086), req.UserID)
	assert.Equal(t, int64(987654321), req.PlaylogID)
	assert.False(t, req.IsEventMode)
	assert.False(t, req.IsFreePlay)

	require.Len(t, all.UserExtend, 1)
	assert.JSONEq(t, `{"selectMusicId":11693}`, string(all.UserExtend[0]))
	require.Len(t, all.UserOption, 1)
	require.Len(t, all.UserRatingList, 1)
	require.Len(t, all.UserActivityList, 1)
	assert.Len(t, all.UserChargeList, 1)
	assert.Empty(t, all.UserItemList)
	assert.Equal(t, []api.ChartScore{api.DefaultChartScore()}, all.UserMusicDetailList)
	assert.Equal(t, "1", all.IsNewMusicDetailList)
	assert.Equal(t, "0", all.IsNewCourseList)
	assert.Equal(t, "", all.IsNewItemList)

	require.Len(t, all.UserGamePlaylogList, 1)
	gp := all.UserGamePlaylogList[0]
	assert.Equal(t, int64(987654321), gp.PlaylogID)
	assert.Equal(t, "1.51.00", gp.Version)
	assert.Equal(t, "2025-03-14 15:09:26.0", gp.PlayDate)
	assert.Equal(t, -1, gp.UseTicketID)
	assert.Equal(t, 1, gp.PlayCredit)
	assert.Equal(t, 1, gp.PlayTrack)
	assert.Equal(t, 321, gp.PlayCount)
	assert.Equal(t, int32(-1473249280), gp.PlaySpecial)
}

func TestBuild_EmptyListsSerializeAsArrays(t *testing.T) {
	src := testSources()
	src.Charges = nil
	src.Extend = nil

	data, err := json.Marshal(Build(testParams(), src).Payload())
	require.NoError(t, err)

	var decoded struct {
		UpsertUserAll map[string]any `json:"upsertUserAll"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	all := decoded.UpsertUserAll

	for _, key := range []string{"userChargeList", "userExtend", "userGhost", "userItemList", "userKaleidxScopeList"} {
		assert.Equal(t, []any{}, all[key], key)
	}
}

func TestBuild_DoesNotAliasLiveData(t *testing.T) {
	src := testSources()
	doc := Build(testParams(), src)

	src.UserData.CharaSlot[0] = 999
	assert.Equal(t, 101, doc.UserData().CharaSlot[0])
}

func TestDocument_Unlock(t *testing.T) {
	doc := Build(testParams(), testSources())

	doc.Unlock([]int{11693, 11694}, []api.ItemKind{api.ItemMusic, api.ItemMusicMaster})

	all := doc.Payload().UpsertUserAll
	assert.Equal(t, []api.UserItem{
		{ItemKind: api.ItemMusic, ItemID: 11693, Stock: 1, IsValid: true},
		{ItemKind: api.ItemMusic, ItemID: 11694, Stock: 1, IsValid: true},
		{ItemKind: api.ItemMusicMaster, ItemID: 11693, Stock: 1, IsValid: true},
		{ItemKind: api.ItemMusicMaster, ItemID: 11694, Stock: 1, IsValid: true},
	}, all.UserItemList)
	assert.Equal(t, "1111", all.IsNewItemList)
}

func TestDocument_UnlockAccumulates(t *testing.T) {
	doc := Build(testParams(), testSources())

	doc.Unlock([]int{1}, []api.ItemKind{api.ItemIcon}).Partner([]int{17, 18})

	all := doc.Payload().UpsertUserAll
	require.Len(t, all.UserItemList, 3)
	assert.Equal(t, api.ItemPartner, all.UserItemList[2].ItemKind)
	assert.Equal(t, 18, all.UserItemList[2].ItemID)
	assert.Equal(t, "111", all.IsNewItemList)
}

func TestDocument_UnlockEmptyInputIsNoop(t *testing.T) {
	tests := []struct {
		name  string
		ids   []int
		kinds []api.ItemKind
	}{
		{name: "no ids", ids: nil, kinds: DefaultUnlockKinds},
		{name: "empty ids", ids: []int{}, kinds: DefaultUnlockKinds},
		{name: "no kinds", ids: []int{1}, kinds: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build(testParams(), testSources())
			same := doc.Unlock(tt.ids, tt.kinds)

			assert.Same(t, doc, same)
			assert.Empty(t, doc.Payload().UpsertUserAll.UserItemList)
			assert.Equal(t, "", doc.Payload().UpsertUserAll.IsNewItemList)
		})
	}
}

func TestDocument_Replace(t *testing.T) {
	doc := Build(testParams(), testSources())

	doc.Replace(true)
	assert.Equal(t, "0", doc.Payload().UpsertUserAll.IsNewMusicDetailList)
	assert.True(t, doc.Replacing())

	doc.Replace(false)
	assert.Equal(t, "1", doc.Payload().UpsertUserAll.IsNewMusicDetailList)
	assert.False(t, doc.Replacing())
}

func TestDocument_Music(t *testing.T) {
	doc := Build(testParams(), testSources())
	score := api.ChartScore{
		MusicID:       11451,
		Level:         3,
		PlayCount:     1,
		Achievement:   1005000,
		ComboStatus:   1,
		DeluxscoreMax: 2500,
		ScoreRank:     13,
	}

	doc.Music(score)

	assert.Equal(t, score, doc.Score())
	assert.Equal(t, []api.ChartScore{score}, doc.Payload().UpsertUserAll.UserMusicDetailList)

	pl := doc.Playlog(1)
	assert.Equal(t, 11451, pl.MusicID)
	assert.Equal(t, 3, pl.Level)
	assert.Equal(t, 1005000, pl.Achievement)
	assert.Equal(t, 2500, pl.Deluxscore)
	assert.Equal(t, 13, pl.ScoreRank)
}

// Maimile отклоняет любое значение, в том числе оканчивающееся на 0 или 9
func TestDocument_MaimileAlwaysRejects(t *testing.T) {
	for _, target := range []int64{99999, 12340, 12345, 0} {
		doc := Build(testParams(), testSources())
		doc.Maimile(target)

		ud := doc.UserData()
		assert.Equal(t, int64(1200), ud.Point, "target %d", target)
		assert.Equal(t, int64(5000), ud.TotalPoint, "target %d", target)
	}
}

func TestMaimileRejected(t *testing.T) {
	for last := int64(0); last < 10; last++ {
		assert.True(t, maimileRejected(100+last), "last digit %d", last)
	}
}
