package patcher

import (
	"regexp"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
)

const (
	vueImport    = "import { createApp } from 'vue';"
	quasarImport = "import { Quasar } from 'quasar';"
	iconsCSS     = "@quasar/extras/material-icons/material-icons.css"
)

var mountCall = regexp.MustCompile(`app\.mount\('#.*'\)`)

// EntryPointRules returns the rules that register Quasar in the application
// entry point: the import, the icon and framework stylesheets, and the
// app.use call ahead of mounting.
func EntryPointRules() []domain.Rule {
	return []domain.Rule{
		{
			Name:    "quasar-import",
			Applied: contains("import { Quasar } from 'quasar'"),
			Apply:   insertAfter(vueImport, "\n"+quasarImport),
		},
		{
			Name:    "quasar-assets",
			Applied: contains(iconsCSS),
			Apply: insertAfter(quasarImport,
				"\nimport '"+iconsCSS+"';\nimport 'quasar/src/css/index.sass';"),
		},
		{
			Name:    "quasar-use",
			Applied: contains("app.use(Quasar"),
			Apply: func(buf string) string {
				return replaceFirst(mountCall, buf, func(g []string) string {
					return "app.use(Quasar, {\n  plugins: {}, // import Quasar plugins here\n});\n" + g[0]
				})
			},
		},
	}
}
