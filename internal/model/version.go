package model

// Version is the application version, shown by --version and the
// update checker.
const Version = "0.3.1"
