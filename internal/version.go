package internal

// Version is the mdtranslate release version
const Version = "0.3.0"
