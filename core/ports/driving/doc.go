// Package driving defines interfaces that external actors (applications
// embedding the pipeline) use to interact with core services. These are
// the "driving" ports in hexagonal architecture terminology - they drive
// the pipeline.
//
// Implementations of these interfaces live in core/services.
package driving
