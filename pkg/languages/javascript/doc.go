// Package javascript implements the JavaScript language module for the DOM
// bridge.
package javascript
