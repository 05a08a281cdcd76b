package mcpserver

// petDocument has one root input referencing Pet, and a definition nobody
// references.
const petDocument = `{
  "element": "parseResult",
  "content": [
    {
      "element": "category",
      "content": [
        {"element": "dataStructure", "content": {"element": "Pet"}},
        {
          "element": "dataStructure",
          "content": {
            "element": "object",
            "meta": {"id": "Pet", "description": "A pet"},
            "content": [
              {
                "element": "member",
                "attributes": {"typeAttributes": ["required"]},
                "content": {
                  "key": {"element": "string", "content": "name"},
                  "value": {"element": "string", "content": "Rex"}
                }
              },
              {
                "element": "member",
                "content": {
                  "key": {"element": "string", "content": "age"},
                  "value": {"element": "number", "content": 3}
                }
              }
            ]
          }
        },
        {
          "element": "dataStructure",
          "content": {"element": "string", "meta": {"id": "Unused"}, "content": "x"}
        }
      ]
    }
  ]
}`

// brokenRefDocument references a name that is never defined.
const brokenRefDocument = `{
  "element": "parseResult",
  "content": [
    {"element": "dataStructure", "content": {"element": "Ghost"}}
  ]
}`

const usersFixture = "../../refract/testdata/users.json"
