package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetpredict/config"
	"fleetpredict/core/model"
)

func TestServicePredictLogsToMonitor(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)

	out, err := svc.Predict(model.ModelStatus, model.FeatureRecord{Speed: 0})
	require.NoError(t, err)
	res, ok := out.(model.StatusResult)
	require.True(t, ok)
	assert.Equal(t, "parked", res.Prediction)
	assert.Equal(t, 1, svc.Monitor.Metrics().TotalPredictions)
}

func TestServiceBatch(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)

	records := []model.FeatureRecord{{Speed: 90}, {Speed: 10}}
	pairs, err := svc.Batch(records, model.ModelEmergency)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	m := svc.Monitor.Metrics()
	assert.Equal(t, 2, m.TotalPredictions)
	assert.Equal(t, 1, m.EmergencyDetections)
}

func TestServiceBatchUnknownKind(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)

	_, err = svc.Batch([]model.FeatureRecord{{Speed: 1}}, model.ModelKind("forest"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownModelKind))
	assert.Equal(t, 0, svc.Monitor.Metrics().TotalPredictions, "failed batch must not touch the log")
}
