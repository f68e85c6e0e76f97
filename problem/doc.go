// Package problem is the value type exchanged between the front-ends and the
// nwcm solver: a cost grid, supply and demand vectors and optional labels.
//
// It covers everything the solver deliberately does not:
//
//   - New builds the zero-filled rows×cols problem a data-entry form starts from.
//   - Load reads a problem file (YAML, JSON or TOML, chosen by extension).
//   - ParseGrid / ParseVector read the compact "4,6;3,2" and "10,15" forms
//     used on the command line.
//   - Validate reports every structural problem at once, with readable
//     messages, before anything is handed to the solver.
//   - Encode writes a problem back out (YAML or JSON), e.g. as a template.
//
// Solve and IsBalanced are thin pass-throughs to the nwcm package.
package problem
