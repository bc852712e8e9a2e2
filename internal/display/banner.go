package display

import (
	"fmt"
	"strings"
)

// bannerArt is "Employee" over "Manager" in the figlet Standard font.
var bannerArt = []string{
	` _____                 _                       `,
	`| ____|_ __ ___  _ __ | | ___  _   _  ___  ___ `,
	"|  _| | '_ ` _ \\| '_ \\| |/ _ \\| | | |/ _ \\/ _ \\",
	`| |___| | | | | | |_) | | (_) | |_| |  __/  __/`,
	`|_____|_| |_| |_| .__/|_|\___/ \__, |\___|\___|`,
	`                |_|            |___/           `,
	` __  __                                   `,
	`|  \/  | __ _ _ __   __ _  __ _  ___ _ __ `,
	"| |\\/| |/ _` | '_ \\ / _` |/ _` |/ _ \\ '__|",
	`| |  | | (_| | | | | (_| | (_| |  __/ |   `,
	`|_|  |_|\__,_|_| |_|\__,_|\__, |\___|_|   `,
	`                          |___/           `,
}

// Banner prints the boxed startup banner surrounded by blank lines.
func (r *Renderer) Banner() {
	box := r.styles.Banner.Render(strings.Join(bannerArt, "\n"))
	fmt.Fprintf(r.out, "\n%s\n\n", box)
}
