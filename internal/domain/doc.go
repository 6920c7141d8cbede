// Package domain contains the value types shared by the springweb handlers.
//
// Domain types carry no persistence or transport concerns; they are built
// fresh for every request and discarded once the response is written.
package domain
