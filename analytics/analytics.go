// Package analytics configures the tag manager once at startup. Pages
// include its snippet through Head and Body; nothing else depends on it.
package analytics

import (
	"fmt"
	"regexp"
	"sync"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var containerPattern = regexp.MustCompile(`^GTM-[A-Z0-9]{4,12}$`)

var (
	once        sync.Once
	containerID string
)

// Init records the container id. Only the first call has any effect and
// an empty id leaves analytics disabled.
func Init(id string) error {
	var err error
	once.Do(func() {
		if id == "" {
			return
		}
		if !containerPattern.MatchString(id) {
			err = fmt.Errorf("invalid tag manager container id %q", id)
			return
		}
		containerID = id
	})
	return err
}

// ContainerID returns the configured id, "" when disabled.
func ContainerID() string {
	return containerID
}

// Head returns the loader script for <head>.
func Head() g.Node {
	if containerID == "" {
		return nil
	}
	return h.Script(g.Rawf(`(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':
new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],
j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src=
'https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);
})(window,document,'script','dataLayer','%s');`, containerID))
}

// Body returns the no-script fallback for the top of <body>.
func Body() g.Node {
	if containerID == "" {
		return nil
	}
	return h.NoScript(
		h.IFrame(
			h.Src("https://www.googletagmanager.com/ns.html?id="+containerID),
			h.Height("0"),
			h.Width("0"),
			h.Style("display:none;visibility:hidden"),
		),
	)
}
