// Package binding defines binding descriptors and their discovery.
//
// A Descriptor declares that a presenter capability should be bound to every
// registered view satisfying a view capability. Hosts carry descriptors in
// one of three ways:
//
//   - by implementing Declarer and returning descriptors built with Of
//   - through the explicit table populated by RegisterHost
//   - from an HCL manifest resolved through the name registries
//
// Discovery is cached process-wide per concrete host type: the first
// DescriptorsFor call for a type computes the sequence, every later call for
// any instance of that type returns the cached slice. Entries are never
// invalidated; host types are assumed stable for the process lifetime.
package binding
