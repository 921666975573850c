// Package nn provides layer helpers built on the autodiff graph: the
// dense (linear) layer, frequency positional encoding for coordinate
// networks, and weight initialization. Everything here is an ordinary
// composition of ad operators; no layer carries backward logic of its own.
package nn
