package writetime

const newline = "\r\n"
