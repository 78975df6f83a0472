package entity

type LoadStatus string

const (
	LoadStatusPending LoadStatus = "pending"
	LoadStatusSuccess LoadStatus = "success"
	LoadStatusFailure LoadStatus = "failure"
)

// DirectorySnapshot is the outcome of the single directory fetch.
// Doctors is always empty unless Status is LoadStatusSuccess.
type DirectorySnapshot struct {
	Status  LoadStatus
	Doctors []Doctor
	// Error is the user-visible message of a failed fetch.
	Error string
}

func PendingSnapshot() DirectorySnapshot {
	return DirectorySnapshot{Status: LoadStatusPending, Doctors: []Doctor{}}
}

func FailedSnapshot(message string) DirectorySnapshot {
	return DirectorySnapshot{Status: LoadStatusFailure, Doctors: []Doctor{}, Error: message}
}

func LoadedSnapshot(doctors []Doctor) DirectorySnapshot {
	if doctors == nil {
		doctors = []Doctor{}
	}
	return DirectorySnapshot{Status: LoadStatusSuccess, Doctors: doctors}
}
