// Package factory owns presenter construction.
//
// A single process-wide factory serves every binder. It may be set exactly
// once with Configure; if nothing is configured by the time the first
// presenter is created, the slot is filled with the built-in Table, a
// constructor-table factory populated via RegisterConstructor. A second
// Configure call fails with a factory_configured error whose message tells
// the two cases apart; behaviorally they are identical.
package factory
