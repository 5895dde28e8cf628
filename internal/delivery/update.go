package delivery

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/ini.v1"
)

// Kind is the type of an update package, taken from the GAME_DESC prefix.
type Kind string

const (
	KindPatch  Kind = "patch"  // программа (.app)
	KindOption Kind = "option" // контент (.opt)
	KindOther  Kind = "other"
)

// Package - ссылка на файл пакета обновления
type Package struct {
	Name string
	URL  string
}

func newPackage(rawURL string) Package {
	return Package{Name: path.Base(rawURL), URL: rawURL}
}

// UpdateInfo описывает одно обновление из INI-файла delivery
type UpdateInfo struct {
	Source      string
	Kind        Kind
	Title       string
	Install     Package
	Optional    []Package
	ReleaseTime string
}

// ParseUpdate разбирает INI-описание обновления. Секция COMMON обязательна,
// OPTIONAL содержит прошлые пакеты и может отсутствовать.
func ParseUpdate(data []byte) (*UpdateInfo, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:    true,
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse update ini: %w", err)
	}

	common, err := cfg.GetSection("COMMON")
	if err != nil {
		return nil, fmt.Errorf("update ini: %w", err)
	}
	for _, key := range []string{"GAME_DESC", "INSTALL1", "RELEASE_TIME"} {
		if !common.HasKey(key) {
			return nil, fmt.Errorf("update ini: COMMON has no %s", key)
		}
	}

	desc := strings.Trim(common.Key("GAME_DESC").String(), `"`)
	kind, title := splitDesc(desc)

	info := &UpdateInfo{
		Kind:        kind,
		Title:       title,
		Install:     newPackage(common.Key("INSTALL1").String()),
		ReleaseTime: strings.Replace(common.Key("RELEASE_TIME").String(), "T", " ", 1),
	}

	if optional, err := cfg.GetSection("OPTIONAL"); err == nil {
		for _, k := range optional.Keys() {
			info.Optional = append(info.Optional, newPackage(k.String()))
		}
	}

	return info, nil
}

func splitDesc(desc string) (Kind, string) {
	prefix, _, _ := strings.Cut(desc, "_")
	switch prefix {
	case "PATCH":
		return KindPatch, strings.TrimPrefix(desc, "PATCH_")
	case "OPTION":
		return KindOption, strings.TrimPrefix(desc, "OPTION_")
	default:
		return KindOther, desc
	}
}
