// Package services contains the resource adapters of the trip planner client.
// Each adapter translates between form state and the backend's wire DTOs and
// owns the list/get/create/update/delete calls for one resource.
package services
