package main

const bytesPerFloat64 = 8

// globalName is the property of the JS global object the exports live on.
const globalName = "quiverbloom"
