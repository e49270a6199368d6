package refdata_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/estatekit/console/internal/mocks"
	"github.com/estatekit/console/internal/usecase/refdata"
	"github.com/estatekit/console/pkg/logger"
)

func initRefDataTest(t *testing.T) (*refdata.UseCase, *mocks.MockUpstreamAPI) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	t.Cleanup(mockCtl.Finish)

	api := mocks.NewMockUpstreamAPI(mockCtl)

	return refdata.New(api, logger.New("error")), api
}

func TestList(t *testing.T) {
	t.Parallel()

	uc, api := initRefDataTest(t)

	want := json.RawMessage(`[{"id":1,"name":"A+"}]`)
	api.EXPECT().List(gomock.Any(), "bloodgroup").Return(want, nil)

	got, err := uc.List(context.Background(), "blood-groups")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListUnknownResource(t *testing.T) {
	t.Parallel()

	uc, _ := initRefDataTest(t)

	_, err := uc.List(context.Background(), "not-a-resource")

	assert.ErrorIs(t, err, refdata.ErrUnknownResource)
}

func TestAdd(t *testing.T) {
	t.Parallel()

	uc, api := initRefDataTest(t)

	body := json.RawMessage(`{"name":"Residential"}`)
	want := json.RawMessage(`{"id":9,"name":"Residential"}`)
	api.EXPECT().Create(gomock.Any(), "category", body).Return(want, nil)

	got, err := uc.Add(context.Background(), "categories", body)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	uc, api := initRefDataTest(t)

	body := json.RawMessage(`{"name":"Commercial"}`)
	api.EXPECT().Update(gomock.Any(), "category", "9", body).Return(body, nil)

	got, err := uc.Update(context.Background(), "categories", "9", body)

	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	uc, api := initRefDataTest(t)

	api.EXPECT().Delete(gomock.Any(), "leavetype", "3").Return(nil)

	require.NoError(t, uc.Delete(context.Background(), "leave-types", "3"))
}

func TestMutationsRejectUnknownResource(t *testing.T) {
	t.Parallel()

	uc, _ := initRefDataTest(t)

	_, err := uc.Add(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, refdata.ErrUnknownResource)

	_, err = uc.Update(context.Background(), "nope", "1", nil)
	assert.ErrorIs(t, err, refdata.ErrUnknownResource)

	err = uc.Delete(context.Background(), "nope", "1")
	assert.ErrorIs(t, err, refdata.ErrUnknownResource)
}

func TestResources(t *testing.T) {
	t.Parallel()

	slugs := refdata.Resources()

	assert.Contains(t, slugs, "categories")
	assert.Contains(t, slugs, "properties")
	assert.Len(t, slugs, 20)
}
