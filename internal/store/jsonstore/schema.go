package jsonstore

const schemaURL = "tasklist.schema.json"

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "taskDescription", "date", "time", "priority", "dueTag"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "taskDescription": {
        "type": "array",
        "minItems": 1,
        "items": {"type": "string", "pattern": "\\S"}
      },
      "date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
      "time": {"type": "string", "pattern": "^[0-9]{2}:[0-9]{2}$"},
      "priority": {"enum": ["C", "H", "N", "L"]},
      "dueTag": {"enum": ["I", "T", "O"]}
    }
  }
}`
