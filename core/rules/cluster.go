package rules

import (
	"math"

	"fleetpredict/core/model"
)

// Cluster identifiers. The assignment rules and centroids come from the
// original k-means evaluation and are fixed; see Reference.
const (
	ClusterWestSF    = 0
	ClusterCentralSF = 1
	ClusterAircraft  = 2
)

var clusterPatterns = map[int]string{
	ClusterWestSF:    "Urban ground vehicles, western region",
	ClusterCentralSF: "Mixed transit vehicles, central region",
	ClusterAircraft:  "Aerial vehicles with speeds >200 km/h",
}

// PredictCluster assigns a record to one of three behavioural clusters:
// anything above 200 km/h is aircraft, ground vehicles split on longitude
// at -122.43. The distance to the assigned centroid is Euclidean in a
// mixed feature space with speed scaled down by 100, rounded to three
// decimals.
func (e *Engine) PredictCluster(f model.FeatureRecord) model.ClusterResult {
	id := ClusterCentralSF
	switch {
	case f.Speed > 200:
		id = ClusterAircraft
	case f.Longitude < -122.43:
		id = ClusterWestSF
	}

	name := ""
	if id < len(e.ref.Clusters) {
		name = e.ref.Clusters[id].Name
	}

	distance := 0.0
	if id < len(e.ref.Centers) {
		c := e.ref.Centers[id]
		distance = math.Sqrt(
			math.Pow(f.Latitude-c.Lat, 2) +
				math.Pow(f.Longitude-c.Lon, 2) +
				math.Pow((f.Speed-c.Speed)/100, 2))
	}

	return model.ClusterResult{
		ClusterID:        id,
		ClusterType:      name,
		BehaviorPattern:  clusterPatterns[id],
		DistanceToCenter: round3(distance),
		SilhouetteScore:  e.ref.Silhouette,
	}
}
