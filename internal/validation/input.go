// Package validation проверяет пользовательский ввод CLI до обращения к серверу.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/iudanet/sdgb/pkg/api"
)

// OwnerPattern определяет допустимый формат владельца привязки
// Латинские буквы, цифры и символы _ : . @ -, длина 1-64
var OwnerPattern = regexp.MustCompile(`^[a-zA-Z0-9_:.@-]{1,64}$`)

const (
	// MinPassphraseLen минимальная длина passphrase хранилища привязок
	MinPassphraseLen = 8
	// MaxAchievement - 101.0000% в единицах 1/10000
	MaxAchievement = 1010000
	// MaxLevel - индекс сложности Re:MASTER
	MaxLevel = 4
	// MaxComboStatus - AP+
	MaxComboStatus = 4
	// MaxSyncStatus - FDX+
	MaxSyncStatus = 5
)

// ParseUserID разбирает игровой userId
func ParseUserID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("user id cannot be empty")
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("user id must be a number: %q", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("user id must be positive, got %d", id)
	}
	return id, nil
}

// ValidateOwner проверяет идентификатор владельца привязки
func ValidateOwner(owner string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if !OwnerPattern.MatchString(owner) {
		return fmt.Errorf("owner can only contain letters, numbers and _ : . @ - (up to 64 characters)")
	}
	return nil
}

// ValidatePassphrase проверяет минимальные требования к passphrase
func ValidatePassphrase(passphrase string) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase cannot be empty")
	}
	if len(passphrase) < MinPassphraseLen {
		return fmt.Errorf("passphrase must be at least %d characters long", MinPassphraseLen)
	}
	return nil
}

// ParseIDList разбирает список положительных id, разделенных запятыми или пробелами
func ParseIDList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("id list cannot be empty")
	}

	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", f)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseItemKinds разбирает список типов предметов по именам (music, music_master, ...)
func ParseItemKinds(names []string) ([]api.ItemKind, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("item kind list cannot be empty")
	}

	kinds := make([]api.ItemKind, 0, len(names))
	for _, name := range names {
		kind, ok := api.ParseItemKind(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown item kind %q", name)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// ParseAchievement переводит процент ("100.5") в единицы 1/10000 (1005000)
func ParseAchievement(s string) (int, error) {
	percent, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("achievement must be a number: %q", s)
	}

	raw := int(math.Round(percent * 10000))
	if raw < 0 || raw > MaxAchievement {
		return 0, fmt.Errorf("achievement must be between 0 and 101, got %s", s)
	}
	return raw, nil
}

// ValidateChartScore проверяет диапазоны полей результата
func ValidateChartScore(score api.ChartScore) error {
	if score.MusicID <= 0 {
		return fmt.Errorf("music id must be positive, got %d", score.MusicID)
	}
	if score.Level < 0 || score.Level > MaxLevel {
		return fmt.Errorf("level must be between 0 and %d, got %d", MaxLevel, score.Level)
	}
	if score.Achievement < 0 || score.Achievement > MaxAchievement {
		return fmt.Errorf("achievement must be between 0 and %d, got %d", MaxAchievement, score.Achievement)
	}
	if score.ComboStatus < 0 || score.ComboStatus > MaxComboStatus {
		return fmt.Errorf("combo status must be between 0 and %d, got %d", MaxComboStatus, score.ComboStatus)
	}
	if score.SyncStatus < 0 || score.SyncStatus > MaxSyncStatus {
		return fmt.Errorf("sync status must be between 0 and %d, got %d", MaxSyncStatus, score.SyncStatus)
	}
	if score.DeluxscoreMax < 0 {
		return fmt.Errorf("dx score cannot be negative, got %d", score.DeluxscoreMax)
	}
	return nil
}
