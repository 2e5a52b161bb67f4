package constants

// NATS subjects
const (
	// SubjectLocationUpdate carries device location fixes into the store
	SubjectLocationUpdate = "location.update"
	// SubjectAlertDispatched announces a completed SOS fan-out
	SubjectAlertDispatched = "alert.dispatched"
)

// QueueGroupLocation is the queue group for location fix consumers so a
// fix is written exactly once per deployment.
const QueueGroupLocation = "location-service"
