package api

// ItemKind is the item category used by userItemList.
type ItemKind int

const (
	ItemPlate           ItemKind = 1  // рамка имени
	ItemTitle           ItemKind = 2  // титул
	ItemIcon            ItemKind = 3  // аватар
	ItemPresent         ItemKind = 4  // подарок
	ItemMusic           ItemKind = 5  // трек
	ItemMusicMaster     ItemKind = 6  // Master-чарт
	ItemMusicReMaster   ItemKind = 7  // Re:Master-чарт
	ItemMusicStrong     ItemKind = 8
	ItemCharacter       ItemKind = 9  // спутник
	ItemPartner         ItemKind = 10 // партнер
	ItemFrame           ItemKind = 11 // фон
	ItemTicket          ItemKind = 12 // билет
	ItemMile            ItemKind = 13
	ItemIntimate        ItemKind = 14
	ItemKaleidxScopeKey ItemKind = 15
)

var itemKindNames = map[ItemKind]string{
	ItemPlate:           "plate",
	ItemTitle:           "title",
	ItemIcon:            "icon",
	ItemPresent:         "present",
	ItemMusic:           "music",
	ItemMusicMaster:     "music_master",
	ItemMusicReMaster:   "music_remaster",
	ItemMusicStrong:     "music_strong",
	ItemCharacter:       "character",
	ItemPartner:         "partner",
	ItemFrame:           "frame",
	ItemTicket:          "ticket",
	ItemMile:            "mile",
	ItemIntimate:        "intimate",
	ItemKaleidxScopeKey: "kaleidxscope_key",
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseItemKind resolves an item kind by its name.
func ParseItemKind(name string) (ItemKind, bool) {
	for kind, n := range itemKindNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}
