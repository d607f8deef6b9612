package doctor

import "strings"

// SecretKeyPatterns contains substrings that indicate a flag likely carries
// sensitive data. Flags are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// TokenPrefixes contains known API token prefixes that indicate sensitive values
// regardless of flag name.
var TokenPrefixes = []string{
	"ghp_",  // GitHub personal access token
	"gho_",  // GitHub OAuth token
	"ghu_",  // GitHub user-to-server token
	"ghs_",  // GitHub server-to-server token
	"ghr_",  // GitHub refresh token
	"sk-",   // OpenAI/Anthropic keys
	"AKIA",  // AWS access key prefix
	"xoxb-", // Slack bot token
	"xoxp-", // Slack user token
}

// MaskArgs masks sensitive values in an editor's custom arguments. A
// "--flag=value" argument is masked when the flag matches SecretKeyPatterns;
// the argument following a bare sensitive flag is masked too. Any argument
// carrying a known token prefix is masked. Returns a new slice.
func MaskArgs(args []string) []string {
	if args == nil {
		return nil
	}

	masked := make([]string, len(args))
	maskNext := false
	for i, arg := range args {
		isFlag := strings.HasPrefix(arg, "-")
		if maskNext && !isFlag {
			masked[i] = MaskValue(arg)
			maskNext = false
			continue
		}
		maskNext = false
		masked[i] = arg

		if !isFlag {
			if ContainsTokenPrefix(arg) {
				masked[i] = MaskValue(arg)
			}
			continue
		}

		flag, value, hasValue := strings.Cut(arg, "=")
		switch {
		case hasValue && (ShouldMask(flag) || ContainsTokenPrefix(value)):
			masked[i] = flag + "=" + MaskValue(value)
		case !hasValue && ShouldMask(flag):
			maskNext = true
		}
	}
	return masked
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// RedactHome replaces a leading home directory in path with "~".
func RedactHome(path, home string) string {
	if home == "" || path == "" {
		return path
	}
	home = strings.TrimRight(home, `/\`)
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home) && len(path) > len(home) && (path[len(home)] == '/' || path[len(home)] == '\\') {
		return "~" + path[len(home):]
	}
	return path
}

// ShouldMask returns true if the flag name suggests it contains sensitive data.
// Matching is case-insensitive.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if the value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
