// internal/app/features/attendance/grouping.go
package attendance

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Artemka1806/LyBotAPI/internal/domain/models"
)

// groupCodePattern is the class subgroup naming convention: digits, a dash,
// a single letter (e.g., "10-А"). Codes outside the convention still appear
// in the report but sort into the raw-string bucket.
var groupCodePattern = regexp.MustCompile(`^([0-9]+)-(\p{L})$`)

// BuildReport folds a family-name-ordered user list into the nested
// class → group → member structure.
//
// The input order matters: members keep it inside each group, there is no
// final re-sort at the member level. Users without a group are skipped.
func BuildReport(users []models.User) Report {
	classIndex := map[string]*Class{}
	groupIndex := map[string]*Group{}
	var classes []*Class

	for _, u := range users {
		if u.Group == nil || *u.Group == "" {
			continue
		}
		code := *u.Group
		prefix, _, _ := strings.Cut(code, "-")

		cls, ok := classIndex[prefix]
		if !ok {
			cls = &Class{Prefix: prefix}
			classIndex[prefix] = cls
			classes = append(classes, cls)
		}

		grp, ok := groupIndex[code]
		if !ok {
			grp = &Group{Code: code}
			groupIndex[code] = grp
			cls.Groups = append(cls.Groups, grp)
		}

		message := ""
		if u.StatusMessage != nil {
			message = *u.StatusMessage
		}

		grp.put(u.DisplayName(), MemberStatus{
			Name:            u.DisplayName(),
			AvatarURL:       u.AvatarURL,
			StatusUpdatedAt: u.StatusUpdatedAt,
			Status:          u.Status,
			Message:         message,
		})
	}

	sortClasses(classes)
	for _, cls := range classes {
		sortGroups(cls.Groups)
	}

	return Report{Classes: classes}
}

// sortClasses orders class prefixes numerically ascending. Prefixes that are
// not plain integers sort before all numeric ones, by raw string.
func sortClasses(classes []*Class) {
	sort.SliceStable(classes, func(i, j int) bool {
		ni, errI := strconv.Atoi(classes[i].Prefix)
		nj, errJ := strconv.Atoi(classes[j].Prefix)
		iOK, jOK := errI == nil, errJ == nil

		switch {
		case iOK && jOK:
			return ni < nj
		case iOK != jOK:
			return !iOK // raw bucket first
		default:
			return classes[i].Prefix < classes[j].Prefix
		}
	})
}

// sortGroups orders subgroup codes by (numeric prefix, trailing letter) for
// codes matching the convention; non-matching codes sort before all matching
// ones, by raw string.
func sortGroups(groups []*Group) {
	type key struct {
		matches bool
		num     int
		letter  string
	}
	keyOf := func(code string) key {
		m := groupCodePattern.FindStringSubmatch(code)
		if m == nil {
			return key{}
		}
		n, _ := strconv.Atoi(m[1])
		return key{matches: true, num: n, letter: m[2]}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		ki, kj := keyOf(groups[i].Code), keyOf(groups[j].Code)
		switch {
		case ki.matches != kj.matches:
			return !ki.matches
		case !ki.matches:
			return groups[i].Code < groups[j].Code
		case ki.num != kj.num:
			return ki.num < kj.num
		default:
			return ki.letter < kj.letter
		}
	})
}
