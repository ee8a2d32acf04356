package sounds

import "embed"

// bundledFS holds the CC0 sound effects shipped with aoe. The files are
// installed into the user's sounds directory by the installer and also
// serve as playback fallbacks when an installed file goes missing.
//
//go:embed assets/*.ogg
var bundledFS embed.FS

const bundledDir = "assets"
