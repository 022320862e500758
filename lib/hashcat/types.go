// Package hashcat provides utilities for interacting with hashcat.
package hashcat

import (
	"fmt"
	"strconv"
	"strings"
)

// AttackMode is hashcat's --attack-mode value.
type AttackMode int

const (
	AttackModeStraight       AttackMode = 0 // AttackModeStraight is the dictionary attack, optionally with rules
	AttackModeCombination    AttackMode = 1 // AttackModeCombination concatenates words from two wordlists
	AttackModeBruteForce     AttackMode = 3 // AttackModeBruteForce is the mask attack
	AttackModePermutation    AttackMode = 4 // AttackModePermutation is the legacy permutation attack
	AttackModeHybridWordMask AttackMode = 6 // AttackModeHybridWordMask appends a mask to each word
	AttackModeHybridMaskWord AttackMode = 7 // AttackModeHybridMaskWord prepends a mask to each word
	AttackModeAssociation    AttackMode = 9 // AttackModeAssociation pairs hashes with per-hash hints
)

// attackModeInfo describes one row of the attack-mode table.
type attackModeInfo struct {
	mode       AttackMode
	label      string
	aliases    []string
	selectable bool
}

//nolint:gochecknoglobals // Static lookup table
var attackModeTable = []attackModeInfo{
	{AttackModeStraight, "Straight", []string{"straight", "dictionary", "dict"}, true},
	{AttackModeCombination, "Combination", []string{"combination", "combinator"}, true},
	{AttackModeBruteForce, "Brute-force", []string{"brute-force", "bruteforce", "mask"}, true},
	{AttackModePermutation, "Permutation", []string{"permutation"}, false},
	{AttackModeHybridWordMask, "Hybrid Wordlist + Mask", []string{"hybrid-wm", "hybrid-dict-mask"}, true},
	{AttackModeHybridMaskWord, "Hybrid Mask + Wordlist", []string{"hybrid-mw", "hybrid-mask-dict"}, true},
	{AttackModeAssociation, "Association", []string{"association"}, true},
}

// String returns the display label of the attack mode.
func (m AttackMode) String() string {
	for _, info := range attackModeTable {
		if info.mode == m {
			return info.label
		}
	}

	return "Unknown (" + strconv.Itoa(int(m)) + ")"
}

// Known reports whether the attack mode is one hashcat-gui knows how to build arguments for.
func (m AttackMode) Known() bool {
	for _, info := range attackModeTable {
		if info.mode == m {
			return true
		}
	}

	return false
}

// AttackModes returns the attack modes offered for selection, in ascending order.
// The legacy permutation mode is accepted from profiles but not offered.
func AttackModes() []AttackMode {
	modes := make([]AttackMode, 0, len(attackModeTable))
	for _, info := range attackModeTable {
		if info.selectable {
			modes = append(modes, info.mode)
		}
	}

	return modes
}

// ParseAttackMode accepts a numeric mode, a display label or a short alias.
func ParseAttackMode(s string) (AttackMode, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if m := AttackMode(n); m.Known() {
			return m, nil
		}

		return 0, fmt.Errorf("%w: %d", ErrUnknownAttackMode, n)
	}

	for _, info := range attackModeTable {
		if strings.EqualFold(info.label, s) {
			return info.mode, nil
		}
		for _, alias := range info.aliases {
			if strings.EqualFold(alias, s) {
				return info.mode, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAttackMode, s)
}

// GroupSet records which form sections are relevant for an attack mode.
type GroupSet struct {
	Wordlists     bool `json:"wordlists"`      // Wordlist entries are appended as positional arguments
	Rules         bool `json:"rules"`          // Rules files or rule generation apply
	Password      bool `json:"password"`       // Permutation length bounds apply
	Mask          bool `json:"mask"`           // The mask field is used
	CustomCharset bool `json:"custom_charset"` // Custom charsets 1-4 apply
}

// Groups returns the form sections enabled for the given attack mode.
// Unknown modes enable nothing.
func Groups(mode AttackMode) GroupSet {
	switch mode {
	case AttackModeStraight, AttackModeAssociation:
		return GroupSet{Wordlists: true, Rules: true}
	case AttackModeCombination:
		return GroupSet{Wordlists: true}
	case AttackModeBruteForce:
		return GroupSet{Mask: true, CustomCharset: true}
	case AttackModePermutation:
		return GroupSet{Wordlists: true, Password: true}
	case AttackModeHybridWordMask, AttackModeHybridMaskWord:
		return GroupSet{Wordlists: true, Mask: true, CustomCharset: true}
	default:
		return GroupSet{}
	}
}

// Names returns the enabled group names in a fixed order.
func (g GroupSet) Names() []string {
	var names []string
	if g.Wordlists {
		names = append(names, "wordlists")
	}
	if g.Rules {
		names = append(names, "rules")
	}
	if g.Password {
		names = append(names, "password")
	}
	if g.Mask {
		names = append(names, "mask")
	}
	if g.CustomCharset {
		names = append(names, "custom_charset")
	}

	return names
}
