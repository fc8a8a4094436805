package depthvalid

var DEPTH = uint32(0)
