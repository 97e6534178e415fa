package scene

import (
	"fmt"
	"sort"
)

// Built-in ASCII-art banners, box-drawing safe.
var banners = map[string]string{
	"glitch": " ██████╗ ██╗     ██╗████████╗ ██████╗██╗  ██╗\n" +
		"██╔════╝ ██║     ██║╚══██╔══╝██╔════╝██║  ██║\n" +
		"██║  ███╗██║     ██║   ██║   ██║     ███████║\n" +
		"██║   ██║██║     ██║   ██║   ██║     ██╔══██║\n" +
		"╚██████╔╝███████╗██║   ██║   ╚██████╗██║  ██║\n" +
		" ╚═════╝ ╚══════╝╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝",
	"neon": "███╗   ██╗███████╗ ██████╗ ███╗   ██╗\n" +
		"████╗  ██║██╔════╝██╔═══██╗████╗  ██║\n" +
		"██╔██╗ ██║█████╗  ██║   ██║██╔██╗ ██║\n" +
		"██║╚██╗██║██╔══╝  ██║   ██║██║╚██╗██║\n" +
		"██║ ╚████║███████╗╚██████╔╝██║ ╚████║\n" +
		"╚═╝  ╚═══╝╚══════╝ ╚═════╝ ╚═╝  ╚═══╝",
	"demo": "██████╗ ███████╗███╗   ███╗ ██████╗ \n" +
		"██╔══██╗██╔════╝████╗ ████║██╔═══██╗\n" +
		"██║  ██║█████╗  ██╔████╔██║██║   ██║\n" +
		"██║  ██║██╔══╝  ██║╚██╔╝██║██║   ██║\n" +
		"██████╔╝███████╗██║ ╚═╝ ██║╚██████╔╝\n" +
		"╚═════╝ ╚══════╝╚═╝     ╚═╝ ╚═════╝ ",
}

// Banner returns the named built-in banner art.
func Banner(name string) (string, error) {
	art, ok := banners[name]
	if !ok {
		return "", fmt.Errorf("unknown banner %q (available: %v)", name, BannerNames())
	}
	return art, nil
}

// BannerNames returns the built-in banner names, sorted.
func BannerNames() []string {
	names := make([]string, 0, len(banners))
	for name := range banners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
