// Command sitekit serves published sites and their editing sessions, and
// offers a few operational helpers around them.
//
// Configuration is read from the environment (and an optional .env file):
//
//	APP_ENV              development | staging | production
//	LOG_LEVEL            debug | info | warn | error
//	HTTP_ADDR            listen address of `sitekit serve`
//	SITE_API_URL         base URL of the website API
//	STORAGE_DRIVER       dir | s3
//	EMAIL_PROVIDER       dev | postmark | ses
//
// See the Config types of the pkg/ packages for the full list.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
