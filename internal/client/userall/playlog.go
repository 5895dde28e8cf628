package userall

import (
	"math/rand/v2"
	"strings"

	"github.com/iudanet/sdgb/pkg/api"
)

// Значения-заполнители записи play-log
const (
	characterAwakening = 5
	playlogExtNum4     = 3020
)

// PlaylogVersion переводит версию игры в формат play-log: "1.51.00" -> "1051000"
func PlaylogVersion(version string) string {
	major, rest, ok := strings.Cut(version, ".")
	if !ok {
		return version
	}
	return major + "0" + strings.ReplaceAll(rest, ".", "") + "0"
}

// between возвращает случайное число в [lo, hi]
func between(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

// Playlog формирует запись о сыгранном треке для UploadUserPlaylogListApi.
// Счетчики оценок заполняются случайными значениями.
func (d *Document) Playlog(trackNo int) api.Playlog {
	p := d.params
	now := d.now()

	var chara [5]int
	copy(chara[:], d.live.CharaSlot)

	return api.Playlog{
		PlaylogID:           p.LoginID,
		Version:             PlaylogVersion(p.GameVersion),
		PlaceID:             p.PlaceID,
		PlaceName:           p.PlaceName,
		LoginDate:           now.Unix(),
		PlayDate:            now.Format(dateLayout),
		UserPlayDate:        now.Format(dateTimeLayout) + ".0",
		MusicID:             d.score.MusicID,
		Level:               d.score.Level,
		TrackNo:             trackNo,
		PlayerNum:           1,
		CharacterID1:        chara[0],
		CharacterLevel1:     between(1000, 6500),
		CharacterAwakening1: characterAwakening,
		CharacterID2:        chara[1],
		CharacterLevel2:     between(1000, 6500),
		CharacterAwakening2: characterAwakening,
		CharacterID3:        chara[2],
		CharacterLevel3:     between(1000, 6500),
		CharacterAwakening3: characterAwakening,
		CharacterID4:        chara[3],
		CharacterLevel4:     between(1000, 6500),
		CharacterAwakening4: characterAwakening,
		CharacterID5:        chara[4],
		CharacterLevel5:     between(1000, 6500),
		CharacterAwakening5: characterAwakening,

		Achievement: d.score.Achievement,
		Deluxscore:  d.score.DeluxscoreMax,
		ScoreRank:   d.score.ScoreRank,
		TotalCombo:  between(700, 900),
		TapMiss:     between(1, 10),
		HoldMiss:    between(1, 15),
		SlideMiss:   between(1, 15),
		TouchMiss:   between(1, 15),
		BreakMiss:   between(1, 15),

		IsTap:                 true,
		IsHold:                true,
		IsSlide:               true,
		IsTouch:               true,
		IsBreak:               true,
		IsCriticalDisp:        true,
		IsFastLateDisp:        true,
		IsAchieveNewRecord:    true,
		IsDeluxscoreNewRecord: true,

		BeforeRating:         d.live.PlayerRating,
		AfterRating:          d.live.PlayerRating + p.RatingOffset,
		AfterGradeRank:       1,
		BeforeDeluxRating:    d.live.PlayerRating,
		AfterDeluxRating:     d.live.PlayerRating + p.RatingOffset,
		TrialPlayAchievement: -1,
		ExtNum4:              playlogExtNum4,
	}
}

// PlaylogRequest возвращает тело UploadUserPlaylogListApi с одной записью
func (d *Document) PlaylogRequest() api.UploadPlaylogRequest {
	return api.UploadPlaylogRequest{
		UserID:          d.params.UserID,
		UserPlaylogList: []api.Playlog{d.Playlog(1)},
	}
}
