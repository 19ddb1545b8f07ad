package client

// Version is reported in the User-Agent header.
const Version = "0.4.0"
