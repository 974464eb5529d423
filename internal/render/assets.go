package render

import "embed"

// Assets holds style.css and script.js, served under /static/ and copied
// into built sites.
//
//go:embed assets/style.css assets/script.js
var Assets embed.FS

// AssetNames lists the files in Assets, relative to assets/.
var AssetNames = []string{"style.css", "script.js"}
