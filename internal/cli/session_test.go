package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/padakosha/anuvada/internal/mocks/cli"
)

func TestRun(t *testing.T) {
	t.Run("session error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		session := mock_cli.NewMockSession(ctrl)

		want := errors.New("read failed")
		session.EXPECT().
			Session(gomock.Any()).
			Return(want)

		err := Run(context.Background(), session)
		assert.ErrorIs(t, err, want)
	})

	t.Run("session end stops the loop without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		session := mock_cli.NewMockSession(ctrl)

		gomock.InOrder(
			session.EXPECT().Session(gomock.Any()).Return(nil),
			session.EXPECT().Session(gomock.Any()).Return(errEnd),
		)

		err := Run(context.Background(), session)
		assert.NoError(t, err)
	})
}
