package version

import (
	"fmt"
)

// Version is the application version. Can be overridden at build time via:
//
//	go build -ldflags "-X github.com/achuth-0908/scgateway/internal/version.Version=1.2.3"
var Version = "1.0"

// RepoURL is the project repository URL. Can be overridden at build time via:
//
//	go build -ldflags "-X github.com/achuth-0908/scgateway/internal/version.RepoURL=https://github.com/yourfork/scgateway"
var RepoURL = "https://github.com/achuth-0908/scgateway"

// Banner prints identifying information about the gateway.
func Banner() string {
	return fmt.Sprintf("%s\nSupply Chain Gateway (v%s)\n%s\n", product(), Version, RepoURL)
}

func product() string {
	// figlet -f standard scgateway
	// it includes back ticks, which makes this more difficult (replace with `+"`"+`).

	const s = `
                        _
  ___  ___ __ _  __ _ | |_ _____      ____ _ _   _
 / __|/ __/ _` + "`" + ` |/ _` + "`" + ` || __/ _ \ \ /\ / / _` + "`" + ` | | | |
 \__ \ (_| (_| | (_| || ||  __/\ V  V / (_| | |_| |
 |___/\___\__, |\__,_| \__\___| \_/\_/ \__,_|\__, |
          |___/                              |___/
`
	return s
}
