package appdir

import (
	"regexp"
	"strings"
)

// Info.plist keys read from application bundles, in fallback order.
var (
	bundleIDKeys    = []string{"CFBundleIdentifier"}
	displayKeys     = []string{"CFBundleDisplayName", "CFBundleName"}
	versionKeys     = []string{"CFBundleShortVersionString", "CFBundleVersion"}
	plistKeyPattern = map[string]*regexp.Regexp{}
)

func init() {
	for _, keys := range [][]string{bundleIDKeys, displayKeys, versionKeys} {
		for _, k := range keys {
			plistKeyPattern[k] = regexp.MustCompile(`<key>` + regexp.QuoteMeta(k) + `</key>\s*<string>(.*?)</string>`)
		}
	}
}

// BundleInfo is what is read from an Info.plist.
type BundleInfo struct {
	BundleID    string
	DisplayName string
	Version     string
}

// ParseInfoPlist extracts bundle id, display name and version from XML
// plist text. It matches key/string pairs only and ignores everything else;
// missing keys yield empty fields.
func ParseInfoPlist(data string) BundleInfo {
	return BundleInfo{
		BundleID:    plistValue(data, bundleIDKeys),
		DisplayName: plistValue(data, displayKeys),
		Version:     plistValue(data, versionKeys),
	}
}

func plistValue(data string, keys []string) string {
	for _, k := range keys {
		if m := plistKeyPattern[k].FindStringSubmatch(data); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}
