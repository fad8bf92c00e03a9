// Package paths normalizes component source paths and demo pathnames into
// the URL segments under which reference pages are published.
package paths

import (
	"regexp"
	"strings"
)

// DemoLink points at a published demo page for a component or hook.
type DemoLink struct {
	DemoPathname  string `json:"demoPathname"`
	DemoPageTitle string `json:"demoPageTitle"`
}

// componentLinkRE matches legacy "/components/<Name>/" demo segments.
var componentLinkRE = regexp.MustCompile(`/components/([^/#]+)/`)

// legacyTopSegments are page roots that moved under the /material-ui product
// prefix when the docs were split per product.
var legacyTopSegments = []string{
	"/react-",
	"/guides/",
	"/customization/",
	"/getting-started/",
	"/discover-more/",
}

// RewriteLegacyLinks maps legacy "material-ui" style URL segments to their
// canonical form: "/components/<Name>/" becomes "/react-<name>/" and known
// top-level segments gain the "/material-ui" product prefix.
func RewriteLegacyLinks(pathname string) string {
	rewritten := componentLinkRE.ReplaceAllStringFunc(pathname, func(m string) string {
		sub := componentLinkRE.FindStringSubmatch(m)
		return "/react-" + KebabCase(sub[1]) + "/"
	})
	for _, seg := range legacyTopSegments {
		if strings.HasPrefix(rewritten, seg) {
			return "/material-ui" + rewritten
		}
	}
	return rewritten
}

// FixPathname rewrites a component's source-relative URL segment into its
// published documentation URL segment. Branches are evaluated in order and
// only the first match executes.
func FixPathname(pathname string) string {
	switch {
	case strings.HasPrefix(pathname, "/material"):
		return RewriteLegacyLinks(strings.TrimPrefix(pathname, "/material") + "/")
	case strings.HasPrefix(pathname, "/joy"):
		fixed := RewriteLegacyLinks(strings.TrimPrefix(pathname, "/joy") + "/")
		return strings.Replace(fixed, "material-ui", "joy-ui", 1)
	case strings.HasPrefix(pathname, "/base"):
		fixed := strings.Replace(pathname, "/base/", "/base-ui/", 1)
		return strings.Replace(fixed, "/components/", "/react-", 1) + "/"
	default:
		return strings.Replace(pathname, "/components/", "/react-", 1) + "/"
	}
}

// APIPath returns the published API URL for a symbol, anchored at the first
// demo's pathname. Returns "" when the symbol has no demos. Hook names
// (use* prefix) link under hooks-api, everything else under components-api.
func APIPath(demos []DemoLink, name string) string {
	if len(demos) == 0 {
		return ""
	}
	base, _, _ := strings.Cut(demos[0].DemoPathname, "#")
	section := "components-api"
	if strings.HasPrefix(name, "use") {
		section = "hooks-api"
	}
	return base + section + "/#" + KebabCase(name)
}
