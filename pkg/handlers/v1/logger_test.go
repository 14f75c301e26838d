package v1

import (
	"context"
	"io/ioutil"

	"github.com/asecurityteam/logevent"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
)

func testLogFn(_ context.Context) domain.Logger {
	return logevent.New(logevent.Config{Output: ioutil.Discard})
}
