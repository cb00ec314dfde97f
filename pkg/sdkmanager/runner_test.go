package sdkmanager

import (
	"context"
	"errors"
	"testing"

	sdkerrors "github.com/qt-creator/qt-creator-sub139/pkg/errors"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
	mock_sdkmanager "github.com/qt-creator/qt-creator-sub139/pkg/sdkmanager/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunner_ListArgs(t *testing.T) {
	r := NewRunner("", "/opt/android-sdk", "--channel=3")
	assert.Equal(t, DefaultBinary, r.Binary)
	assert.Equal(t, []string{"--list", "--verbose", "--channel=3", "--sdk_root=/opt/android-sdk"}, r.ListArgs())

	r = NewRunner("/usr/bin/sdkmanager", "")
	assert.Equal(t, []string{"--list", "--verbose"}, r.ListArgs())
}

func TestRunner_ListPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mock_sdkmanager.NewMockExecutor(ctrl)
	exec.EXPECT().
		Run(gomock.Any(), "sdkmanager", "--list", "--verbose", "--sdk_root=/sdk").
		Return([]byte(loadTranscript(t)), nil, nil).
		Times(1)

	r := NewRunner("sdkmanager", "/sdk")
	r.Exec = exec

	packages, err := r.ListPackages(context.Background(), WithFileSystem(sdk.OSFileSystem{}))
	require.NoError(t, err)
	assert.Len(t, packages, 21)
}

func TestRunner_ListOutputErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mock_sdkmanager.NewMockExecutor(ctrl)
	exec.EXPECT().
		Run(gomock.Any(), "sdkmanager", gomock.Any()).
		Return(nil, []byte("Error: JAVA_HOME is not set\n"), errors.New("exit status 1")).
		Times(1)

	r := NewRunner("sdkmanager", "")
	r.Exec = exec

	_, err := r.ListOutput(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sdkerrors.ErrSdkManagerRun)
	assert.Contains(t, err.Error(), "JAVA_HOME is not set")
}

func TestRunner_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := mock_sdkmanager.NewMockExecutor(ctrl)
	exec.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("signal: killed")).
		Times(1)

	r := NewRunner("", "")
	r.Exec = exec

	_, err := r.ListOutput(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultExecutor_MissingBinary(t *testing.T) {
	_, _, err := DefaultExecutor{}.Run(context.Background(), "sdkmanager-does-not-exist-42")
	assert.ErrorIs(t, err, sdkerrors.ErrSdkManagerNotFound)
}
