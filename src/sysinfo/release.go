package sysinfo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-envparse"
	"howett.net/plist"
)

// parseOSRelease reads an os-release(5) file.
//
// VERSION="22.04.3 LTS (Jammy Jellyfish)" yields version "22.04.3 LTS" and
// code name "Jammy Jellyfish"; VERSION_ID and VERSION_CODENAME fill the gaps
// when VERSION carries no such parts.
func parseOSRelease(r io.Reader) (OSVersion, error) {
	env, err := envparse.Parse(r)
	if err != nil {
		return OSVersion{}, fmt.Errorf("parse os-release: %w", err)
	}
	v := OSVersion{
		Family: env["NAME"],
	}
	version, codeName := splitVersion(env["VERSION"])
	v.Version = version
	if v.Version == "" {
		v.Version = env["VERSION_ID"]
	}
	v.CodeName = codeName
	if v.CodeName == "" {
		v.CodeName = env["VERSION_CODENAME"]
	}
	if v.CodeName == "" {
		v.CodeName = env["UBUNTU_CODENAME"]
	}
	if v.Family == "" {
		v.Family = env["ID"]
	}
	return v, nil
}

// splitVersion splits `22.04.3 LTS (Jammy Jellyfish)` and `11 (bullseye)`
// into the version and the parenthesised code name.
func splitVersion(s string) (version, codeName string) {
	s = strings.TrimSpace(s)
	open := strings.Index(s, "(")
	if open < 0 {
		return strings.TrimSuffix(s, ","), ""
	}
	version = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s[:open]), ","))
	rest := s[open+1:]
	if end := strings.Index(rest, ")"); end >= 0 {
		rest = rest[:end]
	}
	return version, strings.TrimSpace(rest)
}

type systemVersion struct {
	ProductName    string `plist:"ProductName"`
	ProductVersion string `plist:"ProductVersion"`
}

// parseSystemVersion reads macOS SystemVersion.plist.
func parseSystemVersion(r io.ReadSeeker) (OSVersion, error) {
	var sv systemVersion
	if err := plist.NewDecoder(r).Decode(&sv); err != nil {
		return OSVersion{}, fmt.Errorf("parse SystemVersion.plist: %w", err)
	}
	return OSVersion{
		CodeName: macOSCodeName(sv.ProductVersion),
		Family:   sv.ProductName,
		Version:  sv.ProductVersion,
	}, nil
}

var macOSCodeNames = map[int]string{
	11: "Big Sur",
	12: "Monterey",
	13: "Ventura",
	14: "Sonoma",
	15: "Sequoia",
	26: "Tahoe",
}

var macOSXCodeNames = map[int]string{
	12: "Sierra",
	13: "High Sierra",
	14: "Mojave",
	15: "Catalina",
}

func macOSCodeName(version string) string {
	parts := strings.Split(version, ".")
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}
	if major != 10 {
		return macOSCodeNames[major]
	}
	if len(parts) < 2 {
		return ""
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return ""
	}
	return macOSXCodeNames[minor]
}
