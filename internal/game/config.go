package game

var platform = "desktop"

func SetPlatform(p string) {
	if p != "" {
		platform = p
	}
}

func Platform() string { return platform }
